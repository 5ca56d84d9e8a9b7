package handlers

import (
	"net/http"

	"github.com/anonto42/inko/backend/internal/middleware"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagementService *services.EngagementService
}

func NewLikeHandler(engagementService *services.EngagementService) *LikeHandler {
	return &LikeHandler{engagementService: engagementService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/post/like", h.ToggleLike)
}

// ToggleLike likes the post, or unlikes it when the user already did.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	var req models.ToggleLikeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := middleware.AuthorizeActor(c, req.UserID); err != nil {
		return err
	}

	liked, err := h.engagementService.ToggleLike(c.Request().Context(), req.UserID, req.PostID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "liked": liked})
}
