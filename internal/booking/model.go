package booking

import (
	"net/http"
	"time"

	"github.com/campusbook/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrMissingFields     = apperror.New(http.StatusBadRequest, "please provide all required fields")
	ErrRoomNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomUnavailable   = apperror.New(http.StatusBadRequest, "room is not available for booking")
	ErrInvalidTimeFormat = apperror.New(http.StatusBadRequest, "invalid time format, use HH:MM (24-hour format)")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
	ErrPastDate          = apperror.New(http.StatusBadRequest, "cannot create booking for a past date")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "room is already booked for this time slot")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "not authorized to cancel this booking")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking represents a reservation of a room for a time window on a date.
// Date is "YYYY-MM-DD" and the times are zero-padded "HH:MM"; both orders
// chronologically as plain strings.
type Booking struct {
	ID             string
	UserID         string
	UserName       string
	UserEmail      string
	RoomID         string
	RoomName       string
	RoomType       string
	RoomCapacity   int
	RoomFacilities []string
	Date           string
	StartTime      string
	EndTime        string
	Purpose        string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter narrows a booking listing. An empty UserID lists everyone's bookings.
type Filter struct {
	UserID string
}
