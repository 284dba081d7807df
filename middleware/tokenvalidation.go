package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"authapi/logging"
	apperrors "authapi/pkg/errors"
	"authapi/services"
)

// Context keys set by the gate for downstream handlers.
const (
	ContextUserID = "userId"
	ContextToken  = "token"
	ContextClaims = "claims"
)

// DefaultPublicPaths lists the routes that pass through unauthenticated.
var DefaultPublicPaths = []string{"/", "/auth/login", "/auth/register", "/docs"}

// TokenValidationMiddleware gates every request: allowlist check, bearer
// header, signature/expiry validation, then the revocation lookup. The
// validation runs before the lookup so cryptographically invalid tokens
// never cost a cache round-trip.
type TokenValidationMiddleware struct {
	jwt         *services.JwtService
	blacklist   *services.TokenBlacklistService
	logger      logging.Logger
	publicPaths []string
}

func NewTokenValidationMiddleware(jwt *services.JwtService, blacklist *services.TokenBlacklistService, logger logging.Logger, publicPaths []string) *TokenValidationMiddleware {
	return &TokenValidationMiddleware{
		jwt:         jwt,
		blacklist:   blacklist,
		logger:      logger,
		publicPaths: publicPaths,
	}
}

func (m *TokenValidationMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.isPublic(strings.ToLower(c.Request.URL.Path)) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrMissingToken.Error()})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrMissingToken.Error()})
			return
		}

		claims, err := m.jwt.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrInvalidToken.Error()})
			return
		}

		revoked, err := m.blacklist.IsBlacklisted(c.Request.Context(), tokenString)
		if err != nil {
			m.logger.Error(c.Request.Context(), "blacklist lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrTokenRevoked.Error()})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextToken, tokenString)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

func (m *TokenValidationMiddleware) isPublic(path string) bool {
	for _, p := range m.publicPaths {
		if path == p {
			return true
		}
		if p != "/" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
