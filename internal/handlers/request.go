package handlers

import (
	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

const invalidPayload = "Invalid request payload"

// bindBody decodes the request into dst; any decoding failure is a 400.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperrors.Validation(invalidPayload)
	}
	return nil
}

// queryID reads an optional numeric query parameter. Absent means 0.
func queryID(c echo.Context, name string) (uint, error) {
	var id uint
	if err := echo.QueryParamsBinder(c).Uint(name, &id).BindError(); err != nil {
		return 0, apperrors.Validation(invalidPayload)
	}
	return id, nil
}

// requiredUserID reads the user_id query parameter of endpoints that act on
// behalf of a user; a missing id is reported as Unauthorized.
func requiredUserID(c echo.Context) (uint, error) {
	id, err := queryID(c, "user_id")
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, apperrors.Unauthorized("Unauthorized")
	}
	return id, nil
}
