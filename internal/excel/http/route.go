package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the export and import endpoints on the admin group.
func RegisterRoutes(admin *gin.RouterGroup, h *Handler) {
	admin.GET("/export/bookings", h.Export)
	admin.POST("/export/bookings/save", h.ExportSave)
	admin.GET("/export/files/:name", h.StoredFile)
	admin.GET("/export/daily-report", h.DailyReport)
	admin.POST("/import/bookings", h.Import)
}
