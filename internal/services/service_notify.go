package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell-backend/internal/models"
	"inkwell-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	NotiPostLiked    models.NotiType = "POST_LIKED"
	NotiCommentLiked models.NotiType = "COMMENT_LIKED"
	NotiNewComment   models.NotiType = "NEW_COMMENT"
	NotiCommentReply models.NotiType = "COMMENT_REPLY"
	NotiNewFollower  models.NotiType = "NEW_FOLLOWER"
)

// NotiParams carries the display names/titles a notification text needs.
type NotiParams struct {
	ActorName string
	PostTitle string
}

func BuildTitleBody(t models.NotiType, p NotiParams) (title, body string, err error) {
	if p.ActorName == "" {
		return "", "", errors.New("missing ActorName")
	}
	switch t {
	case NotiPostLiked:
		if p.PostTitle == "" {
			return "", "", errors.New("missing PostTitle")
		}
		return "Your story has a new like",
			fmt.Sprintf("%s liked \"%s\".", p.ActorName, p.PostTitle), nil

	case NotiCommentLiked:
		return "Your comment has a new like",
			fmt.Sprintf("%s liked your comment.", p.ActorName), nil

	case NotiNewComment:
		if p.PostTitle == "" {
			return "", "", errors.New("missing PostTitle")
		}
		return "New comment on your story",
			fmt.Sprintf("%s commented on \"%s\".", p.ActorName, p.PostTitle), nil

	case NotiCommentReply:
		return "New reply to your comment",
			fmt.Sprintf("%s replied to your comment.", p.ActorName), nil

	case NotiNewFollower:
		return "You have a new follower",
			fmt.Sprintf("%s started following you.", p.ActorName), nil
	}
	return "", "", fmt.Errorf("unknown noti type: %s", t)
}

// NotifyOne writes a notification for a single user. Self-notifications are
// dropped: nobody needs to hear about their own like.
func NotifyOne(ctx context.Context, repo *repository.NotificationRepository,
	userID, actorID bson.ObjectID, typ models.NotiType, ref models.Ref, p NotiParams) error {

	if userID == actorID || userID.IsZero() {
		return nil
	}
	title, body, err := BuildTitleBody(typ, p)
	if err != nil {
		return err
	}
	return repo.Insert(ctx, &models.Notification{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Body:      body,
		Ref:       ref,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	})
}
