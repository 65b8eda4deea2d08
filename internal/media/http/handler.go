package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/palinaresort/resort-booking-backend/internal/media"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/request"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/response"
)

type Handler struct {
	service media.Service
}

func NewHandler(service media.Service) *Handler {
	return &Handler{service: service}
}

type PhotoResponse struct {
	ID           string `json:"id"`
	CabinTypeID  int64  `json:"cabin_type_id"`
	Filename     string `json:"filename"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

func NewPhotoResponse(p *media.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		CabinTypeID: p.CabinTypeID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         media.PhotoURL(p.ID),
	}
	if p.ThumbnailPath != nil {
		resp.ThumbnailURL = media.ThumbnailURL(p.ID)
	}
	return resp
}

// Upload attaches a photo to a cabin type.
func (h *Handler) Upload(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cabin type id"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	p, err := h.service.Upload(c.Request.Context(), uri.ID, header)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

// ListByCabinType returns the photo metadata for one cabin type.
func (h *Handler) ListByCabinType(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cabin type id"})
		return
	}

	photos, err := h.service.ListByCabinType(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"photos": items})
}

func (h *Handler) Download(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	stream, p, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	servePhoto(c, p.ContentType, p.Filename, stream)
}

func (h *Handler) DownloadThumbnail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	servePhoto(c, "image/jpeg", "thumbnail.jpg", stream)
}

func servePhoto(c *gin.Context, contentType, filename string, stream io.Reader) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}
