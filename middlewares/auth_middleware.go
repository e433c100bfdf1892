package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foundryos/backend/utils"
)

// SubjectKey holds the token subject: a session id for wizard tokens, a
// founder id for dashboard tokens.
const SubjectKey = "subject"

func Auth(secret, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		t := strings.TrimPrefix(h, "Bearer ")
		claims, err := utils.ParseJWT(secret, t)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Scope != scope {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token not valid for this resource"})
			return
		}
		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}
