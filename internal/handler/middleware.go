package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/auth"
	"github.com/pustaka-app/backend/internal/config"
)

const identityKey = "auth_identity"

// RouteGuard is the edge dispatcher: it classifies every request against
// the configured protected/admin prefix tables and enforces identity and
// role requirements before any handler runs. Unprotected paths pass
// through untouched.
func RouteGuard(codec *auth.Codec, routes config.RouteConfig, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if !matchesPrefix(path, routes.Protected) {
			c.Next()
			return
		}

		token := tokenFromRequest(c, cookieName)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := codec.Verify(token)
		if err != nil {
			// Surface the verification failure reason, as the client flows
			// distinguish expired sessions from garbage tokens.
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if matchesPrefix(path, routes.Admin) && claims.Role != auth.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequireRole double-checks the resolved identity on a route group. It
// never re-verifies the token; the guard already did that.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Identity(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if claims.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity returns the claims the guard resolved for this request, or nil.
func Identity(c *gin.Context) *auth.Claims {
	if value, ok := c.Get(identityKey); ok {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// ExtractIdentity resolves request credentials directly, bypassing the
// guard's context. Any verification failure is "no identity", never an
// error: callers treat nil as unauthenticated.
func ExtractIdentity(codec *auth.Codec, c *gin.Context, cookieName string) *auth.Claims {
	header := c.GetHeader("Authorization")
	token := ""
	if strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if token == "" {
		token, _ = c.Cookie(cookieName)
	}
	if token == "" {
		return nil
	}

	claims, err := codec.Verify(token)
	if err != nil {
		return nil
	}
	return claims
}

// tokenFromRequest looks for the credential the way the edge dispatcher
// does: session cookie first, then the Authorization header.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
