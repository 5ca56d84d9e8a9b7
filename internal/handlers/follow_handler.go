package handlers

import (
	"net/http"

	"github.com/anonto42/inko/backend/internal/middleware"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles the follow toggle
type FollowHandler struct {
	socialService *services.SocialService
}

func NewFollowHandler(socialService *services.SocialService) *FollowHandler {
	return &FollowHandler{socialService: socialService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow", h.ToggleFollow)
}

func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	var req models.ToggleFollowRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := middleware.AuthorizeActor(c, req.FollowerID); err != nil {
		return err
	}

	followed, err := h.socialService.ToggleFollow(c.Request().Context(), req.FollowerID, req.FollowingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "followed": followed})
}
