package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/brainbridge/catalog-gateway/internal/models"
)

const (
	// ContextTokenKey stores the raw bearer token on the gin context.
	ContextTokenKey = "bearerToken"
	// ContextClaimsKey stores the parsed claims, when the token parses.
	ContextClaimsKey = "bearerClaims"
)

// BearerToken extracts the Authorization bearer token without blocking
// anonymous requests: an absent token degrades every bookmark operation
// to its anonymous branch downstream. Claims are parsed unverified —
// the upstream auth service owns the signing key and is the only party
// that rejects tokens — purely so logs can carry the subject.
func BearerToken() gin.HandlerFunc {
	parser := jwt.NewParser()

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.Next()
			return
		}

		c.Set(ContextTokenKey, parts[1])

		var claims jwt.RegisteredClaims
		if _, _, err := parser.ParseUnverified(parts[1], &claims); err == nil {
			parsed := models.BearerClaims{Subject: claims.Subject}
			if claims.ExpiresAt != nil {
				parsed.ExpiresAt = claims.ExpiresAt.Time
			}
			c.Set(ContextClaimsKey, parsed)
		}

		c.Next()
	}
}

// Token returns the bearer token stored on the context, or empty.
func Token(c *gin.Context) string {
	if v, exists := c.Get(ContextTokenKey); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// Claims returns the parsed claims when present.
func Claims(c *gin.Context) (models.BearerClaims, bool) {
	if v, exists := c.Get(ContextClaimsKey); exists {
		if claims, ok := v.(models.BearerClaims); ok {
			return claims, true
		}
	}
	return models.BearerClaims{}, false
}

// Subject returns the token subject for logging, or empty. Expired-but-
// present tokens still pass through; rejection is upstream's call.
func Subject(c *gin.Context) string {
	claims, ok := Claims(c)
	if !ok {
		return ""
	}
	return claims.Subject
}

// LogFields enriches the request log with token claims: the subject,
// plus a flag when the token arrived already expired so upstream 401s
// can be told apart from revocations.
func LogFields(c *gin.Context) []zap.Field {
	claims, ok := Claims(c)
	if !ok {
		return nil
	}

	fields := make([]zap.Field, 0, 2)
	if claims.Subject != "" {
		fields = append(fields, zap.String("subject", claims.Subject))
	}
	if claims.Expired(time.Now()) {
		fields = append(fields, zap.Bool("token_expired", true))
	}
	return fields
}
