package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/migrmrz/social-app-backend/internal/models"
	"github.com/migrmrz/social-app-backend/internal/repositories"
	"github.com/migrmrz/social-app-backend/internal/validators"
	"github.com/migrmrz/social-app-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newServer() *echo.Echo {
	repo := repositories.NewMemoryRepository()
	e := echo.New()
	e.Validator = validators.NewValidator()
	SetupRoutes(e, repo, repo)
	return e
}

func do(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e := newServer()

	rec := do(e, "GET", "/health", nil)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

// Full lifecycle: create a profile, comment on it, like the comment twice
// from the same user, then unlike. The count must end at zero with an
// empty likes list.
func TestLikeLifecycleEndToEnd(t *testing.T) {
	e := newServer()

	rec := do(e, "POST", "/api/v1.0/user", map[string]interface{}{"name": "A Martinez", "mbti": "ISFJ"})
	require.Equal(t, 201, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	userID := created["id"]

	rec = do(e, "POST", "/api/v1.0/user/"+userID+"/comment", map[string]interface{}{
		"body": "insightful", "from_user_id": "visitor-a", "mbti": "ENTP",
	})
	require.Equal(t, 201, rec.Code)

	rec = do(e, "GET", "/api/v1.0/user/"+userID+"/comments", nil)
	require.Equal(t, 200, rec.Code)
	var listing struct {
		Comments []models.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Comments, 1)
	commentID := listing.Comments[0].ID

	like := map[string]interface{}{"from_user_id": "visitor-a"}
	rec = do(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, like)
	assert.Equal(t, 201, rec.Code)

	rec = do(e, "POST", "/api/v1.0/user/"+userID+"/comment/"+commentID, like)
	assert.Equal(t, 200, rec.Code)

	rec = do(e, "DELETE", "/api/v1.0/user/"+userID+"/comment/"+commentID, like)
	assert.Equal(t, 200, rec.Code)

	rec = do(e, "GET", "/api/v1.0/user/"+userID+"/comments", nil)
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Comments, 1)
	assert.Equal(t, 0, listing.Comments[0].LikesCount)
	assert.Empty(t, listing.Comments[0].Likes)
}
