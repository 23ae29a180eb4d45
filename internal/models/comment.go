package models

// Comment represents a comment embedded in a user profile document. The id
// is an ObjectID hex string generated at insertion time, so it sorts roughly
// by creation time. LikesCount is kept in lockstep with the likes array by
// the repository's conditional updates.
type Comment struct {
	ID         string `json:"id" bson:"id"`
	Body       string `json:"body" bson:"body"`
	FromUserID string `json:"from_user_id" bson:"from_user_id"`
	MBTI       string `json:"mbti" bson:"mbti"`
	LikesCount int    `json:"likes_count" bson:"likes_count"`
	Likes      []Like `json:"likes" bson:"likes"`
}

// CreateCommentRequest defines the request body for posting a comment.
// likes_count is accepted for compatibility but always reset to zero at
// insertion.
type CreateCommentRequest struct {
	Body       string `json:"body" validate:"required"`
	FromUserID string `json:"from_user_id" validate:"required"`
	MBTI       string `json:"mbti" validate:"required"`
	LikesCount *int   `json:"likes_count,omitempty"`
}
