package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the admin authentication endpoint. Login is
// public; everything else behind the admin group requires the token it
// issues.
func RegisterRoutes(public *gin.RouterGroup, h *Handler) {
	public.POST("/admin/login", h.Login)
}
