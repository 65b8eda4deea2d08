package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public catalog endpoints.
func RegisterRoutes(public *gin.RouterGroup, h *Handler) {
	public.GET("/cabin-types", h.ListCabinTypes)
	public.GET("/day-passes", h.ListDayPasses)
}
