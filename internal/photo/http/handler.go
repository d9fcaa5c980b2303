package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusbook/room-booking-backend/internal/photo"
	"github.com/campusbook/room-booking-backend/internal/pkg/response"
)

type Handler struct {
	photoService photo.Service
}

func NewHandler(photoService photo.Service) *Handler {
	return &Handler{
		photoService: photoService,
	}
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Upload attaches a photo to a room. Admin-gated at the route level.
func (h *Handler) Upload(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	p, err := h.photoService.Upload(c.Request.Context(), header, roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := UploadResponse{
		ID:       p.ID,
		RoomID:   p.RoomID,
		Filename: p.Filename,
		URL:      photo.PhotoURL(p.ID),
	}
	if p.ThumbnailPath != nil {
		resp.ThumbnailURL = photo.ThumbnailURL(p.ID)
	}

	c.JSON(http.StatusCreated, resp)
}

// PhotoResponse is the listing shape for a room's photos.
type PhotoResponse struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListByRoom returns all photos attached to a room.
func (h *Handler) ListByRoom(c *gin.Context) {
	roomID := c.Param("id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	photos, err := h.photoService.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = PhotoResponse{
			ID:          p.ID,
			Filename:    p.Filename,
			ContentType: p.ContentType,
			Size:        p.Size,
			URL:         photo.PhotoURL(p.ID),
			CreatedAt:   p.CreatedAt,
		}
		if p.ThumbnailPath != nil {
			items[i].ThumbnailURL = photo.ThumbnailURL(p.ID)
		}
	}
	c.JSON(http.StatusOK, items)
}

// ServePhoto serves the photo content by ID.
func (h *Handler) ServePhoto(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo ID is required"})
		return
	}

	stream, p, err := h.photoService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", p.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started, nothing to report.
		return
	}
}

// ServeThumbnail serves the thumbnail image by photo ID.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo ID is required"})
		return
	}

	stream, p, err := h.photoService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG.
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}

// Delete removes a photo and its stored files. Admin-gated at the route level.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
