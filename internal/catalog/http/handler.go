package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palinaresort/resort-booking-backend/internal/catalog"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListCabinTypes(c *gin.Context) {
	cabins, err := h.service.ListCabinTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if cabins == nil {
		cabins = []*catalog.CabinType{}
	}
	c.JSON(http.StatusOK, gin.H{"cabin_types": cabins})
}

func (h *Handler) ListDayPasses(c *gin.Context) {
	passes, err := h.service.ListDayPasses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if passes == nil {
		passes = []*catalog.DayPass{}
	}
	c.JSON(http.StatusOK, gin.H{"day_passes": passes})
}
