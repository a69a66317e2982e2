package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the user id the auth middleware stored on the context.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case float64:
		return uint(id)
	default:
		return 0
	}
}
