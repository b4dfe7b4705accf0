package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	"github.com/vforit/ticktrack/internal/shared/logger"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	jwtService      *auth.JWTService
	revocationStore auth.RevocationStore
	logger          logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, revocationStore auth.RevocationStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:      jwtService,
		revocationStore: revocationStore,
		logger:          logger.NewLogger().With("component", "auth_middleware"),
	}
}

// RequireAuth rejects the request unless it carries a valid, unrevoked
// access token. On success the claims are stored on the gin context under
// user_id, username, fresh and token_claims.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Debugw("token verification failed",
				"error", err,
				"client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "access token required")
			c.Abort()
			return
		}

		revoked, err := m.revocationStore.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			m.logger.Errorw("revocation lookup failed", "error", err, "jti", claims.ID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to validate token")
			c.Abort()
			return
		}
		if revoked {
			utils.ErrorResponse(c, http.StatusUnauthorized, "token has been revoked")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("fresh", claims.Fresh)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// RequireFresh must run after RequireAuth. It rejects tokens minted through
// the refresh flow; sensitive operations want a recent password login.
func (m *AuthMiddleware) RequireFresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		fresh, exists := c.Get("fresh")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		if isFresh, ok := fresh.(bool); !ok || !isFresh {
			utils.ErrorResponse(c, http.StatusUnauthorized, "fresh token required, please log in again")
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
