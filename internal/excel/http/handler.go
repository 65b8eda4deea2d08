package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/palinaresort/resort-booking-backend/internal/booking"
	"github.com/palinaresort/resort-booking-backend/internal/excel"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service excel.Service
}

func NewHandler(service excel.Service) *Handler {
	return &Handler{service: service}
}

type exportRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Type   string `form:"type" binding:"omitempty,oneof=cabin day_pass"`
}

// Export streams a bookings workbook as a download, optionally narrowed
// by the same status and type filters the booking list accepts.
func (h *Handler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := booking.Filter{
		Status: booking.Status(req.Status),
		Type:   booking.Type(req.Type),
	}
	content, name, err := h.service.Export(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveWorkbook(c, name, content)
}

// ExportSave writes the workbook to server storage instead of
// streaming it, returning the stored filename.
func (h *Handler) ExportSave(c *gin.Context) {
	name, err := h.service.ExportToStorage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"filename": name})
}

// StoredFile downloads a previously saved export by filename.
func (h *Handler) StoredFile(c *gin.Context) {
	name := c.Param("name")

	rc, err := h.service.OpenStored(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

// DailyReport streams the operations report for today.
func (h *Handler) DailyReport(c *gin.Context) {
	content, name, err := h.service.DailyReport(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	serveWorkbook(c, name, content)
}

// Import accepts a multipart upload under the "file" field and applies
// it to the booking records.
func (h *Handler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer src.Close()

	result, err := h.service.Import(c.Request.Context(), src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse workbook"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func serveWorkbook(c *gin.Context, name string, content []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, content)
}
