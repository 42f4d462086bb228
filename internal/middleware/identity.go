package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/auth"
)

// UIDKey is the context key the resolved user id is stored under.
const UIDKey = "firebase_uid"

// Identity resolves the caller's user id through the configured provider and
// stores it on the request context. Requests without a resolvable identity
// are rejected before reaching the handler.
func Identity(p auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := p.UID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(UIDKey, uid)
		c.Next()
	}
}
