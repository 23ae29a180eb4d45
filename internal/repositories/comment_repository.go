package repositories

import (
	"context"
	"fmt"

	"github.com/migrmrz/social-app-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentSort selects the ordering criterion for SortComments.
type CommentSort string

const (
	// SortBest orders comments by likes_count, most liked first.
	SortBest CommentSort = "best"
	// SortRecent orders comments by id, newest first. Comment ids are
	// ObjectID hex strings, so descending id approximates recency.
	SortRecent CommentSort = "recent"
)

// CommentRepository defines the interface for operations on the comments
// embedded in user profile documents
type CommentRepository interface {
	AddComment(ctx context.Context, userID string, comment *models.Comment) error
	GetComments(ctx context.Context, userID string) ([]models.Comment, error)
	FilterCommentsByMBTI(ctx context.Context, userID, mbti string) ([]models.Comment, error)
	SortComments(ctx context.Context, userID string, sort CommentSort) ([]models.Comment, error)
	// LikeComment records a like from fromUserID on the given comment.
	// It returns false without mutating anything when that user already
	// liked the comment.
	LikeComment(ctx context.Context, userID, commentID, fromUserID string) (bool, error)
	// UnlikeComment removes fromUserID's like from the given comment.
	// It returns false without mutating anything when no such like exists.
	UnlikeComment(ctx context.Context, userID, commentID, fromUserID string) (bool, error)
}

// MongoCommentRepository implements CommentRepository against the users
// collection; comments live as embedded arrays, not their own collection
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("users")}
}

// AddComment appends a comment to the user's embedded comment list
func (r *MongoCommentRepository) AddComment(ctx context.Context, userID string, comment *models.Comment) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return fmt.Errorf("pushing comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetComments returns the user's comments in stored (insertion) order
func (r *MongoCommentRepository) GetComments(ctx context.Context, userID string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"comments": 1})
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Comments == nil {
		return []models.Comment{}, nil
	}
	return user.Comments, nil
}

// FilterCommentsByMBTI returns every comment whose mbti field equals the
// given tag. $filter keeps all matching elements, unlike an $elemMatch
// projection which surfaces only the first one.
func (r *MongoCommentRepository) FilterCommentsByMBTI(ctx context.Context, userID, mbti string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": objID}}},
		{{Key: "$project", Value: bson.M{
			"comments": bson.M{"$filter": bson.M{
				"input": bson.M{"$ifNull": bson.A{"$comments", bson.A{}}},
				"as":    "comment",
				"cond":  bson.M{"$eq": bson.A{"$$comment.mbti", mbti}},
			}},
		}}},
	}

	return r.runCommentsPipeline(ctx, pipeline)
}

// SortComments returns all comments ordered by the given criterion,
// descending. The array index captured by $unwind is the secondary sort
// key, which keeps ties in their original insertion order.
func (r *MongoCommentRepository) SortComments(ctx context.Context, userID string, sort CommentSort) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var sortField string
	switch sort {
	case SortBest:
		sortField = "comments.likes_count"
	case SortRecent:
		sortField = "comments.id"
	default:
		return nil, fmt.Errorf("unknown sort criterion: %q", sort)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": objID}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$comments",
			"includeArrayIndex":          "position",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: sortField, Value: -1},
			{Key: "position", Value: 1},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$_id",
			"comments": bson.M{"$push": "$comments"},
		}}},
	}

	return r.runCommentsPipeline(ctx, pipeline)
}

// runCommentsPipeline executes a pipeline that yields at most one document
// holding a comments array. No documents at all means the user is absent.
func (r *MongoCommentRepository) runCommentsPipeline(ctx context.Context, pipeline mongo.Pipeline) ([]models.Comment, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregating comments: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Comments []models.Comment `bson:"comments"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrUserNotFound
	}
	if results[0].Comments == nil {
		return []models.Comment{}, nil
	}
	return results[0].Comments, nil
}

// LikeComment pushes the like and increments likes_count in one conditional
// update: the filter only matches when the target comment exists and has no
// like from this user yet, so concurrent likes from the same user cannot
// both apply and the count stays equal to the array length.
func (r *MongoCommentRepository) LikeComment(ctx context.Context, userID, commentID, fromUserID string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, ErrInvalidID
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{
			"_id": objID,
			"comments": bson.M{"$elemMatch": bson.M{
				"id":                 commentID,
				"likes.from_user_id": bson.M{"$ne": fromUserID},
			}},
		},
		bson.M{
			"$inc":  bson.M{"comments.$.likes_count": 1},
			"$push": bson.M{"comments.$.likes": models.Like{FromUserID: fromUserID}},
		},
	)
	if err != nil {
		return false, fmt.Errorf("liking comment: %w", err)
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	// Nothing matched: absent user, absent comment, or an existing like.
	if err := r.classifyNoMatch(ctx, objID, commentID); err != nil {
		return false, err
	}
	return false, nil
}

// UnlikeComment removes the like and decrements likes_count in one
// conditional update: the filter requires the like to be present, so the
// count is never decremented below the actual number of likes.
func (r *MongoCommentRepository) UnlikeComment(ctx context.Context, userID, commentID, fromUserID string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, ErrInvalidID
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{
			"_id": objID,
			"comments": bson.M{"$elemMatch": bson.M{
				"id":                 commentID,
				"likes.from_user_id": fromUserID,
			}},
		},
		bson.M{
			"$inc":  bson.M{"comments.$.likes_count": -1},
			"$pull": bson.M{"comments.$.likes": bson.M{"from_user_id": fromUserID}},
		},
	)
	if err != nil {
		return false, fmt.Errorf("unliking comment: %w", err)
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	// Nothing matched: absent user, absent comment, or no such like.
	if err := r.classifyNoMatch(ctx, objID, commentID); err != nil {
		return false, err
	}
	return false, nil
}

// classifyNoMatch distinguishes why a conditional like/unlike update did
// not match: user absent, comment absent, or the condition itself (which
// is the caller's no-op case and yields nil).
func (r *MongoCommentRepository) classifyNoMatch(ctx context.Context, userID primitive.ObjectID, commentID string) error {
	var user models.User
	opts := options.FindOne().SetProjection(
		bson.M{"comments": bson.M{"$elemMatch": bson.M{"id": commentID}}},
	)
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}
		return err
	}
	if len(user.Comments) == 0 {
		return ErrCommentNotFound
	}
	return nil
}
