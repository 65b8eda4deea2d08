package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the notification trail endpoints on the admin group.
func RegisterRoutes(admin *gin.RouterGroup, h *Handler) {
	admin.GET("/notifications", h.ListLog)
	admin.POST("/notifications/test", h.SendTest)
}
