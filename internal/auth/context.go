package auth

import "github.com/gin-gonic/gin"

// GetAdminID returns the authenticated admin's id or 0.
func GetAdminID(c *gin.Context) int64 {
	if v, ok := c.Get("adminID"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetAdminUsername returns the authenticated admin's username or empty string.
func GetAdminUsername(c *gin.Context) string {
	if v, ok := c.Get("adminUsername"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
