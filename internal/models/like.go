package models

// Like records that a user liked a comment. At most one per
// (comment, from_user_id) pair.
type Like struct {
	FromUserID string `json:"from_user_id" bson:"from_user_id"`
}

// LikeRequest defines the request body for liking or unliking a comment.
type LikeRequest struct {
	FromUserID string `json:"from_user_id" validate:"required"`
}
