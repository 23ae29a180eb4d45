package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/migrmrz/social-app-backend/internal/models"
	"github.com/migrmrz/social-app-backend/internal/repositories"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/user", h.CreateUser)
	g.GET("/user/:id", h.GetUser)
}

// CreateUser creates a new user profile and returns its generated id
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	id, err := h.userRepository.CreateUser(c.Request().Context(), req.ToUser())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GetUser retrieves a user profile by id, with the id rendered as a plain
// hex string
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch err {
		case repositories.ErrInvalidID:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		case repositories.ErrUserNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}
