package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-fog/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextSessionClaims is the key used to store session claims in the Gin context.
	ContextSessionClaims = "sessionClaims"

	// ClaimSessionID is the token claim naming the session the bearer may drive.
	ClaimSessionID = "session_id"

	// tokenQueryParam carries the token where headers cannot be set (websockets).
	tokenQueryParam = "token"
)

// Authoriz validates the session token from the Authorization header or the
// token query parameter.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		claims, err := ts.Decode(token)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach session claims to the request context for further use.
		c.Set(ContextSessionClaims, claims)
		c.Next()
	}
}

// SessionID returns the session ID claim set by Authoriz.
func SessionID(c *gin.Context) (string, bool) {
	raw, ok := c.Get(ContextSessionClaims)
	if !ok {
		return "", false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return "", false
	}
	id, ok := claims[ClaimSessionID].(string)
	return id, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query(tokenQueryParam)
		return token, token != ""
	}

	// Split the "Bearer" prefix from the token.
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], parts[1] != ""
}
