package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const identityKey contextKey = "auth_identity"

// Middleware returns an echo middleware that requires a valid bearer token on
// every request it wraps. The authenticated identity is stored on both the
// echo context (key "identity") and the request context.
func Middleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token requerido")
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "formato de autorización inválido")
			}

			claims, err := issuer.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido o expirado")
			}

			id := Identity{
				UsuarioID: claims.UsuarioID,
				Nombre:    claims.Nombre,
				Rol:       claims.Rol,
				EquipoID:  claims.EquipoID,
			}
			c.Set("identity", id)
			ctx := context.WithValue(c.Request().Context(), identityKey, id)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireRole returns a middleware that rejects callers whose role is not in
// the allowed set. It must run after Middleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := c.Get("identity").(Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "token requerido")
			}
			if !allowed[strings.ToLower(id.Rol)] {
				return echo.NewHTTPError(http.StatusForbidden, "rol sin permisos para esta operación")
			}
			return next(c)
		}
	}
}

// IdentityFromContext retrieves the authenticated caller from the request
// context. The second return is false for unauthenticated requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
