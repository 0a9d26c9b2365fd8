package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware sets the given Cache-Control directive on every
// response it wraps. Per-user routes must pass a "private" directive so
// shared caches never store them.
func CacheControlMiddleware(directive string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", directive)
		c.Next()
	}
}
