package http

import (
	"time"

	"github.com/campusbook/room-booking-backend/internal/room"
)

// RoomTag is a brief representation of a room, embedded in booking responses.
type RoomTag struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
}

type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	Facilities  []string  `json:"facilities"`
	Available   bool      `json:"available"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	facilities := rm.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	return RoomResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Type:        string(rm.Type),
		Capacity:    rm.Capacity,
		Facilities:  facilities,
		Available:   rm.Available,
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

// CreateRoomBody is the payload for POST /v1/rooms.
type CreateRoomBody struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Facilities  []string `json:"facilities"`
	Available   *bool    `json:"available"`
	Description string   `json:"description"`
}

// UpdateRoomBody is the payload for PATCH /v1/rooms/:id.
// Pointer fields distinguish "field absent" from "field present with a falsy
// value", so sending available=false disables a room while omitting the field
// leaves it untouched.
type UpdateRoomBody struct {
	Name        *string   `json:"name"`
	Type        *string   `json:"type"`
	Capacity    *int      `json:"capacity"`
	Facilities  *[]string `json:"facilities"`
	Available   *bool     `json:"available"`
	Description *string   `json:"description"`
}
