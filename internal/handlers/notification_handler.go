package handlers

import (
	"net/http"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/middleware"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.POST("/notification/read", h.MarkRead)
}

func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, err := requiredUserID(c)
	if err != nil {
		return err
	}
	if err := middleware.AuthorizeActor(c, userID); err != nil {
		return err
	}

	list, err := h.notificationService.GetNotifications(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// MarkRead marks one notification read, or all of them without notification_id.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	var req models.MarkReadRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.UserID == 0 {
		return apperrors.Unauthorized("Unauthorized")
	}
	if err := middleware.AuthorizeActor(c, req.UserID); err != nil {
		return err
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), req.UserID, req.NotificationID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
