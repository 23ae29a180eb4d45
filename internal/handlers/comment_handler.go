package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/migrmrz/social-app-backend/internal/models"
	"github.com/migrmrz/social-app-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler handles HTTP requests related to profile comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo}
}

// RegisterCommentRoutes registers comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/user/:id/comment", h.PostComment)
	g.GET("/user/:id/comments", h.GetComments)
}

// PostComment appends a comment to a user profile. The comment id is
// generated here, and likes_count always starts at zero regardless of the
// payload.
func (h *CommentHandler) PostComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	comment := &models.Comment{
		ID:         primitive.NewObjectID().Hex(),
		Body:       req.Body,
		FromUserID: req.FromUserID,
		MBTI:       req.MBTI,
		LikesCount: 0,
		Likes:      []models.Like{},
	}

	err := h.commentRepository.AddComment(c.Request().Context(), c.Param("id"), comment)
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		case repositories.ErrUserNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusCreated)
}

// GetComments returns a user's comments. Three mutually exclusive modes:
// no parameters (stored order), filter=<mbti> (all comments with that tag),
// sort=best|recent (likes_count or id descending). filter wins when both
// are supplied.
func (h *CommentHandler) GetComments(c echo.Context) error {
	userID := c.Param("id")
	filter := c.QueryParam("filter")
	sortParam := c.QueryParam("sort")
	ctx := c.Request().Context()

	var comments []models.Comment
	var err error

	switch {
	case filter != "":
		comments, err = h.commentRepository.FilterCommentsByMBTI(ctx, userID, filter)
	case sortParam != "":
		var sortBy repositories.CommentSort
		switch sortParam {
		case "best":
			sortBy = repositories.SortBest
		case "recent":
			sortBy = repositories.SortRecent
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "sort must be 'best' or 'recent'")
		}
		comments, err = h.commentRepository.SortComments(ctx, userID, sortBy)
	default:
		comments, err = h.commentRepository.GetComments(ctx, userID)
	}

	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		case repositories.ErrUserNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}
