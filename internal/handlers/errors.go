package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every failure as {"error": msg}. Internal causes are
// logged and never sent to the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := http.StatusInternalServerError, "Internal server error"

	var appErr *apperrors.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status, msg = appErr.Kind.Status(), appErr.Message
		if appErr.Kind == apperrors.KindInternal {
			slog.ErrorContext(c.Request().Context(), appErr.Message,
				"method", c.Request().Method, "path", c.Path(), "error", appErr.Err)
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if s, ok := httpErr.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(status)
		}
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request().Context(), "http error",
				"method", c.Request().Method, "path", c.Path(), "error", fmt.Sprint(httpErr.Message))
		}
	default:
		slog.ErrorContext(c.Request().Context(), "unhandled error",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, echo.Map{"error": msg})
	}
	if writeErr != nil {
		slog.Warn("failed to write error response", "error", writeErr)
	}
}
