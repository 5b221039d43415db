package dto

import "inkwell-backend/internal/models"

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

// ProfileResponse is a public profile with derived counts.
type ProfileResponse struct {
	models.User
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Posts     int64 `json:"posts"`
}

type FollowResponse struct {
	IsFollowing bool  `json:"isFollowing"`
	Followers   int64 `json:"followers"`
}

type IsFollowingResponse struct {
	IsFollowing bool `json:"isFollowing"`
}
