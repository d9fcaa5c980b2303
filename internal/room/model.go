package room

import (
	"net/http"
	"time"

	"github.com/campusbook/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrDuplicateName   = apperror.New(http.StatusConflict, "room with this name already exists")
	ErrMissingFields   = apperror.New(http.StatusBadRequest, "please provide name, type, and capacity")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "room type must be classroom or lab")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
)

// Type is the kind of bookable room.
type Type string

const (
	TypeClassroom Type = "classroom"
	TypeLab       Type = "lab"
)

// Valid reports whether t is a known room type.
func (t Type) Valid() bool {
	return t == TypeClassroom || t == TypeLab
}

// Room represents a bookable room or lab.
type Room struct {
	ID          string // UUID
	Name        string
	Type        Type
	Capacity    int
	Facilities  []string
	Available   bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
