package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public booking creation endpoint and the
// admin management endpoints.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.POST("/bookings", h.Create)

	admin.GET("/bookings", h.List)
	admin.GET("/bookings/:id", h.Get)
	admin.PATCH("/bookings/:id/status", h.UpdateStatus)
	admin.GET("/stats", h.Stats)
}
