package handlers

import (
	"net/http"

	"github.com/anonto42/inko/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler serves user search and public profiles
type UserHandler struct {
	postService   *services.PostService
	socialService *services.SocialService
}

func NewUserHandler(postService *services.PostService, socialService *services.SocialService) *UserHandler {
	return &UserHandler{postService: postService, socialService: socialService}
}

// RegisterUserRoutes registers search and profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
	g.GET("/profile", h.GetProfile)
}

// SearchUsers handles GET /users/search?query=&user_id=. user_id is optional.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	viewerID, err := queryID(c, "user_id")
	if err != nil {
		return err
	}

	users, err := h.socialService.SearchUsers(c.Request().Context(), c.QueryParam("query"), viewerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.postService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
