package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"nurse-manager/internal/model"
	"nurse-manager/pkg/response"
	"nurse-manager/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth requires a valid access token and stores its scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.VerifyAccessToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// RequireRole rejects principals whose role is not listed. It must run after Auth.
func (m Middleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		for _, r := range roles {
			if sc.Role == string(r) {
				c.Next()
				return
			}
		}
		response.Forbidden(c)
	}
}
