package http

import (
	"net/http"
	"strings"

	"dispatch/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// BearerAuth returns echo middleware that rejects requests without a valid
// bearer token. Authentication runs before any business rule, so an expired
// token never reaches a handler.
func BearerAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return writeErrorStatus(ctx, http.StatusUnauthorized, errMissingToken)
			}

			subject, err := tokens.Verify(token)
			if err != nil {
				return writeErrorStatus(ctx, http.StatusUnauthorized, errInvalidToken)
			}

			ctx.Set("subject", subject)
			return next(ctx)
		}
	}
}
