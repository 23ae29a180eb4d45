package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/migrmrz/social-app-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository keeps user documents in process memory. It implements
// both UserRepository and CommentRepository with the same semantics as the
// Mongo implementations, for running without a database and for tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewMemoryRepository returns an initialized in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

// cloneUser deep-copies a user so callers never alias stored state.
func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	c.Comments = cloneComments(u.Comments)
	return &c
}

func cloneComments(comments []models.Comment) []models.Comment {
	if comments == nil {
		return nil
	}
	out := make([]models.Comment, len(comments))
	for i, cm := range comments {
		out[i] = cm
		out[i].Likes = append([]models.Like(nil), cm.Likes...)
	}
	return out
}

// CreateUser stores the user under a freshly generated id
func (r *MemoryRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = primitive.NewObjectID()
	r.users[user.ID.Hex()] = cloneUser(user)
	return user.ID.Hex(), nil
}

// GetUserByID retrieves a copy of the stored user
func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(user), nil
}

// AddComment appends a comment to the user's comment list
func (r *MemoryRepository) AddComment(ctx context.Context, userID string, comment *models.Comment) error {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	c := *comment
	c.Likes = append([]models.Like(nil), comment.Likes...)
	user.Comments = append(user.Comments, c)
	return nil
}

// GetComments returns the user's comments in insertion order
func (r *MemoryRepository) GetComments(ctx context.Context, userID string) ([]models.Comment, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if user.Comments == nil {
		return []models.Comment{}, nil
	}
	return cloneComments(user.Comments), nil
}

// FilterCommentsByMBTI returns every comment whose mbti equals the tag
func (r *MemoryRepository) FilterCommentsByMBTI(ctx context.Context, userID, mbti string) ([]models.Comment, error) {
	comments, err := r.GetComments(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := []models.Comment{}
	for _, c := range comments {
		if c.MBTI == mbti {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// SortComments returns all comments ordered by the criterion, descending.
// The sort is stable over a copy, so ties keep insertion order and the
// stored order is never disturbed by a read.
func (r *MemoryRepository) SortComments(ctx context.Context, userID string, sortBy CommentSort) ([]models.Comment, error) {
	comments, err := r.GetComments(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case SortBest:
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].LikesCount > comments[j].LikesCount
		})
	case SortRecent:
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].ID > comments[j].ID
		})
	default:
		return nil, fmt.Errorf("unknown sort criterion: %q", sortBy)
	}
	return comments, nil
}

// LikeComment adds the like and bumps likes_count unless this user already
// liked the comment. The check and the mutation share one critical section,
// matching the Mongo implementation's single conditional update.
func (r *MemoryRepository) LikeComment(ctx context.Context, userID, commentID, fromUserID string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return false, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	comment, err := r.findComment(userID, commentID)
	if err != nil {
		return false, err
	}
	for _, like := range comment.Likes {
		if like.FromUserID == fromUserID {
			return false, nil
		}
	}
	comment.Likes = append(comment.Likes, models.Like{FromUserID: fromUserID})
	comment.LikesCount++
	return true, nil
}

// UnlikeComment removes the like and drops likes_count only when the like
// actually exists, so the count never goes negative.
func (r *MemoryRepository) UnlikeComment(ctx context.Context, userID, commentID, fromUserID string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return false, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	comment, err := r.findComment(userID, commentID)
	if err != nil {
		return false, err
	}
	for i, like := range comment.Likes {
		if like.FromUserID == fromUserID {
			comment.Likes = append(comment.Likes[:i], comment.Likes[i+1:]...)
			comment.LikesCount--
			return true, nil
		}
	}
	return false, nil
}

// findComment locates the stored comment. Callers must hold the lock.
func (r *MemoryRepository) findComment(userID, commentID string) (*models.Comment, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	for i := range user.Comments {
		if user.Comments[i].ID == commentID {
			return &user.Comments[i], nil
		}
	}
	return nil, ErrCommentNotFound
}
