package handlers

import (
	"net/http"

	"github.com/anonto42/inko/backend/internal/middleware"
	"github.com/anonto42/inko/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the personalised feed and the global explore list
type FeedHandler struct {
	postService *services.PostService
}

func NewFeedHandler(postService *services.PostService) *FeedHandler {
	return &FeedHandler{postService: postService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/explore", h.GetExplore)
}

// GetFeed handles GET /feed?user_id=
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	if err := middleware.AuthorizeActor(c, userID); err != nil {
		return err
	}

	posts, err := h.postService.GetFeed(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

func (h *FeedHandler) GetExplore(c echo.Context) error {
	posts, err := h.postService.GetExplore(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}
