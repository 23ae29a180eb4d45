package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likePayload(from string) map[string]interface{} {
	return map[string]interface{}{"from_user_id": from}
}

func TestLikeComment_IncrementsOnce(t *testing.T) {
	e, repo := newTestEcho()
	userID := createTestUser(t, e, nil)
	commentID := postTestComment(t, e, repo, userID, commentPayload("nice", "u1", "INTJ"))

	rec := doJSON(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, likePayload("liker-1"))
	require.Equal(t, 201, rec.Code)
	assert.Empty(t, rec.Body.String())

	comments, err := repo.GetComments(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, comments[0].LikesCount)
	require.Len(t, comments[0].Likes, 1)
	assert.Equal(t, "liker-1", comments[0].Likes[0].FromUserID)
}

func TestLikeComment_SecondLikeIsIdempotent(t *testing.T) {
	e, repo := newTestEcho()
	userID := createTestUser(t, e, nil)
	commentID := postTestComment(t, e, repo, userID, commentPayload("nice", "u1", "INTJ"))

	rec := doJSON(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, likePayload("liker-1"))
	require.Equal(t, 201, rec.Code)

	rec = doJSON(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, likePayload("liker-1"))
	require.Equal(t, 200, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user has already liked comment", resp["response"])

	comments, err := repo.GetComments(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, comments[0].LikesCount)
	assert.Len(t, comments[0].Likes, 1)
}

func TestLikeComment_DistinctUsersAccumulate(t *testing.T) {
	e, repo := newTestEcho()
	userID := createTestUser(t, e, nil)
	commentID := postTestComment(t, e, repo, userID, commentPayload("nice", "u1", "INTJ"))

	for _, from := range []string{"a", "b", "c"} {
		rec := doJSON(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, likePayload(from))
		require.Equal(t, 201, rec.Code)
	}

	comments, err := repo.GetComments(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, comments[0].LikesCount)
	assert.Len(t, comments[0].Likes, 3)
}

func TestLikeComment_MissingFromUserID(t *testing.T) {
	e, repo := newTestEcho()
	userID := createTestUser(t, e, nil)
	commentID := postTestComment(t, e, repo, userID, commentPayload("nice", "u1", "INTJ"))

	rec := doJSON(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, map[string]interface{}{})
	assert.Equal(t, 400, rec.Code)
}

func TestLikeComment_AbsentCommentReturns404(t *testing.T) {
	e, repo := newTestEcho()
	userID := createTestUser(t, e, nil)
	postTestComment(t, e, repo, userID, commentPayload("nice", "u1", "INTJ"))

	rec := doJSON(e, "POST", "/api/v1.0/user/"+userID+"/comment/64a1f0c2e1b2c3d4e5f60718", likePayload("a"))
	assert.Equal(t, 404, rec.Code)
}

func TestLikeComment_AbsentUserReturns404(t *testing.T) {
	e, _ := newTestEcho()

	rec := doJSON(e, "POST", "/api/v1.0/user/64a1f0c2e1b2c3d4e5f60718/comment/64a1f0c2e1b2c3d4e5f60719", likePayload("a"))
	assert.Equal(t, 404, rec.Code)
}

func TestUnlikeComment_RemovesExistingLike(t *testing.T) {
	e, repo := newTestEcho()
	userID := createTestUser(t, e, nil)
	commentID := postTestComment(t, e, repo, userID, commentPayload("nice", "u1", "INTJ"))

	rec := doJSON(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, likePayload("liker-1"))
	require.Equal(t, 201, rec.Code)

	rec = doJSON(e, "DELETE", "/api/v1.0/user/"+userID+"/comment/"+commentID, likePayload("liker-1"))
	require.Equal(t, 200, rec.Code)

	comments, err := repo.GetComments(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, comments[0].LikesCount)
	assert.Empty(t, comments[0].Likes)
}

func TestUnlikeComment_NeverLikedIsNoOp(t *testing.T) {
	e, repo := newTestEcho()
	userID := createTestUser(t, e, nil)
	commentID := postTestComment(t, e, repo, userID, commentPayload("nice", "u1", "INTJ"))

	rec := doJSON(e, "DELETE", "/api/v1.0/user/"+userID+"/comment/"+commentID, likePayload("stranger"))
	require.Equal(t, 200, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no changes made", resp["response"])

	// The count must not have gone negative.
	comments, err := repo.GetComments(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, comments[0].LikesCount)
}

func TestUnlikeComment_AbsentCommentReturns404(t *testing.T) {
	e, _ := newTestEcho()
	userID := createTestUser(t, e, nil)

	rec := doJSON(e, "DELETE", "/api/v1.0/user/"+userID+"/comment/64a1f0c2e1b2c3d4e5f60718", likePayload("a"))
	assert.Equal(t, 404, rec.Code)
}
