package http

import (
	"time"

	"github.com/campusbook/room-booking-backend/internal/booking"
	roomHttp "github.com/campusbook/room-booking-backend/internal/room/http"
)

// CreateBookingBody is the payload for POST /v1/bookings.
// Presence of the individual fields is validated by the admission service so
// that a missing-field failure is always reported ahead of room-state checks.
type CreateBookingBody struct {
	RoomID    string `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
}

// UserTag is a brief representation of the booking's owner.
type UserTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID        string           `json:"id"`
	Room      roomHttp.RoomTag `json:"room"`
	User      UserTag          `json:"user"`
	Date      string           `json:"date"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Purpose   string           `json:"purpose"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	facilities := b.RoomFacilities
	if facilities == nil {
		facilities = []string{}
	}

	return BookingResponse{
		ID: b.ID,
		Room: roomHttp.RoomTag{
			ID:         b.RoomID,
			Name:       b.RoomName,
			Type:       b.RoomType,
			Capacity:   b.RoomCapacity,
			Facilities: facilities,
		},
		User: UserTag{
			ID:    b.UserID,
			Name:  b.UserName,
			Email: b.UserEmail,
		},
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Purpose:   b.Purpose,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
