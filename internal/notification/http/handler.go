package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palinaresort/resort-booking-backend/internal/notification"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/response"
)

type Handler struct {
	sender *notification.Sender
	trail  notification.Repository
}

func NewHandler(sender *notification.Sender, trail notification.Repository) *Handler {
	return &Handler{
		sender: sender,
		trail:  trail,
	}
}

func (h *Handler) ListLog(c *gin.Context) {
	var query ListLogRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	entries, total, err := h.trail.List(c.Request.Context(), notification.Filter{
		BookingID: query.BookingID,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LogEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = NewLogEntryResponse(e)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

// SendTest lets an admin verify the WhatsApp configuration by sending
// an arbitrary message. The outcome is returned, never an error.
func (h *Handler) SendTest(c *gin.Context) {
	var body TestMessageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result := h.sender.Send(c.Request.Context(), body.Phone, body.Message, nil)
	c.JSON(http.StatusOK, result)
}
