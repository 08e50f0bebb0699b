package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps downloads carrying guest data out of shared caches.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}
