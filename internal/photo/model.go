package photo

import (
	"net/http"
	"time"

	"github.com/campusbook/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotImage = apperror.New(http.StatusBadRequest, "uploaded file must be an image")
)

// Photo represents an image attached to a room.
type Photo struct {
	ID            string    `json:"id"`
	RoomID        string    `json:"room_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// PhotoURL returns the public URL for accessing a photo by its ID.
func PhotoURL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public URL for accessing a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
