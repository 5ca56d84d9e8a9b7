package middleware

import (
	"strings"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/auth"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// JWTAuthMiddleware checks a bearer token when one is presented and stores its
// claims in the context. Requests without an Authorization header pass through.
func JWTAuthMiddleware(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			// Expecting "Bearer <token>"
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return apperrors.Unauthorized("Invalid Authorization header format")
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return apperrors.Unauthorized("Invalid token")
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

// Claims returns the verified token claims of the request, if any.
func Claims(c echo.Context) (*models.JwtCustomClaims, bool) {
	claims, ok := c.Get(userContextKey).(*models.JwtCustomClaims)
	return claims, ok && claims != nil
}

// AuthorizeActor rejects a request whose token belongs to someone other than
// actorID. Unauthenticated requests are let through.
func AuthorizeActor(c echo.Context, actorID uint) error {
	claims, ok := Claims(c)
	if !ok {
		return nil
	}
	if claims.UserID != actorID {
		return apperrors.Forbidden("Forbidden")
	}
	return nil
}
