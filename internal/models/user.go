package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User lives in the auth_app collection. Follower/following membership is
// kept in the follows collection, not embedded here, so counts can never
// drift from the edge set.
type User struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string        `json:"name" bson:"name"`
	Email        string        `json:"email" bson:"email"`
	PasswordHash string        `json:"-" bson:"password_hash"`
	Bio          string        `json:"bio,omitempty" bson:"bio,omitempty"`
	Avatar       string        `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updated_at"`
}
