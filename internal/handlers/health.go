package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Endpoints is the public route list advertised by the root endpoint.
var Endpoints = []string{
	"/api/auth/signup",
	"/api/auth/login",
	"/api/feed",
	"/api/explore",
	"/api/post",
	"/api/post/like",
	"/api/post/comment",
	"/api/post/comments",
	"/api/follow",
	"/api/users/search",
	"/api/profile",
	"/api/notifications",
	"/api/notification/read",
}

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterHealthRoutes(e *echo.Echo) {
	e.GET("/health", h.HealthCheck)
	e.GET("/", h.Home)
}

// HealthCheck reports ok only when the database answers a ping.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		slog.Warn("health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":  "degraded",
			"message": "Database unavailable",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"message": "INKO API is running",
	})
}

func (h *HealthHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":      "INKO API",
		"version":   "1.0",
		"status":    "running",
		"endpoints": Endpoints,
	})
}
