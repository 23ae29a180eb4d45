package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/migrmrz/social-app-backend/internal/models"
	"github.com/migrmrz/social-app-backend/internal/repositories"
)

// LikeHandler handles HTTP requests related to comment likes
type LikeHandler struct {
	commentRepository repositories.CommentRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(commentRepo repositories.CommentRepository) *LikeHandler {
	return &LikeHandler{commentRepository: commentRepo}
}

// RegisterLikeRoutes registers like routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/user/:id/comment/:comment_id", h.LikeComment)
	g.DELETE("/user/:id/comment/:comment_id", h.UnlikeComment)
}

// LikeComment records a like on a comment. Liking a comment twice from the
// same user is a no-op answered with 200, not 201.
func (h *LikeHandler) LikeComment(c echo.Context) error {
	var req models.LikeRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	liked, err := h.commentRepository.LikeComment(
		c.Request().Context(), c.Param("id"), c.Param("comment_id"), req.FromUserID)
	if err != nil {
		return likeErrorResponse(err)
	}
	if !liked {
		return c.JSON(http.StatusOK, echo.Map{"response": "user has already liked comment"})
	}

	return c.NoContent(http.StatusCreated)
}

// UnlikeComment removes a like from a comment. Unliking a comment that was
// never liked by this user is a no-op answered with 200.
func (h *LikeHandler) UnlikeComment(c echo.Context) error {
	var req models.LikeRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	removed, err := h.commentRepository.UnlikeComment(
		c.Request().Context(), c.Param("id"), c.Param("comment_id"), req.FromUserID)
	if err != nil {
		return likeErrorResponse(err)
	}
	if !removed {
		return c.JSON(http.StatusOK, echo.Map{"response": "no changes made"})
	}

	return c.NoContent(http.StatusOK)
}

func likeErrorResponse(err error) error {
	switch err {
	case repositories.ErrInvalidID:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	case repositories.ErrUserNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	case repositories.ErrCommentNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "comment not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
