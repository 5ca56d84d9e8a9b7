package handlers

import (
	"net/http"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/middleware"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	engagementService *services.EngagementService
}

func NewCommentHandler(engagementService *services.EngagementService) *CommentHandler {
	return &CommentHandler{engagementService: engagementService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/post/comment", h.AddComment)
	g.GET("/post/comments", h.GetComments)
}

func (h *CommentHandler) AddComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := middleware.AuthorizeActor(c, req.UserID); err != nil {
		return err
	}

	comment, err := h.engagementService.AddComment(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "comment": comment})
}

// GetComments handles GET /post/comments?post_id=
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := queryID(c, "post_id")
	if err != nil {
		return err
	}
	if postID == 0 {
		return apperrors.Validation("Missing post_id")
	}

	comments, err := h.engagementService.GetComments(c.Request().Context(), postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}
