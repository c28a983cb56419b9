package i

import "github.com/gin-gonic/gin"

// Controller registers its handlers on the router's two /v1 groups.
type Controller interface {
	// RegisterPublic adds routes reachable without a session token.
	RegisterPublic(*gin.RouterGroup)
	// RegisterProtected adds routes behind the session token middleware.
	RegisterProtected(*gin.RouterGroup)
}
