package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts photo serving on the public group and photo
// management on the admin group.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/media/:id", h.Download)
	public.GET("/media/:id/thumbnail", h.DownloadThumbnail)

	admin.POST("/cabin-types/:id/photos", h.Upload)
	admin.GET("/cabin-types/:id/photos", h.ListByCabinType)
}
