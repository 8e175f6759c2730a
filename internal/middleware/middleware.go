package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"planora-api/pkg/response"
	"planora-api/pkg/scope"
)

const authHeaderPrefix = "Bearer "

// extractBearerToken pulls the raw token out of an Authorization header.
func extractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, authHeaderPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, authHeaderPrefix))
	if token == "" {
		return "", false
	}

	return token, true
}

// Auth authenticates the request. It extracts the bearer token, verifies
// it, checks that the token id is not revoked and that the subject is
// still an active account, then stores the payload and scope on the
// request context. Every rejection answers with the same generic 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.manager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: verify token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Fail closed on backend errors, a token we cannot vouch for is
		// treated the same as an invalid one.
		revoked, err := m.revoked.IsRevoked(ctx, payload.ID)
		if err != nil {
			m.l.Errorf(ctx, "internal.middleware.Auth: check revocation: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if revoked {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		active, err := m.users.IsActive(ctx, payload.UserID())
		if err != nil {
			m.l.Errorf(ctx, "internal.middleware.Auth: check account: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !active {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated
// scope carries one of the given roles.
func (m Middleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if sc.Role == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c)
		c.Abort()
	}
}
