package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campusbook/room-booking-backend/internal/room"
)

type CreateRequest struct {
	UserID    string
	RoomID    string
	Date      string
	StartTime string
	EndTime   string
	Purpose   string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	ListMine(ctx context.Context, userID string) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	Cancel(ctx context.Context, id string, actorID string, actorIsAdmin bool) error
}

type service struct {
	repo        Repository
	roomService room.Service
}

func NewService(repo Repository, roomService room.Service) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
	}
}

// Create validates a proposed booking and admits it if the room is free for
// the requested window. Checks run in a fixed order so the reported error is
// deterministic: field presence, room existence, room availability, time
// format, time range, date, then the conflict scan.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.RoomID) == "" ||
		strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.StartTime) == "" ||
		strings.TrimSpace(req.EndTime) == "" ||
		strings.TrimSpace(req.Purpose) == "" {
		return nil, ErrMissingFields
	}

	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !rm.Available {
		return nil, ErrRoomUnavailable
	}

	start, ok := ParseClock(req.StartTime)
	if !ok {
		return nil, ErrInvalidTimeFormat
	}
	end, ok := ParseClock(req.EndTime)
	if !ok {
		return nil, ErrInvalidTimeFormat
	}

	if end <= start {
		return nil, ErrInvalidTimeRange
	}

	// The date check also runs in the UI, but the service is the trust
	// boundary so it is enforced here as well.
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if req.Date < time.Now().Format("2006-01-02") {
		return nil, ErrPastDate
	}

	b := &Booking{
		UserID:    req.UserID,
		RoomID:    rm.ID,
		Date:      req.Date,
		StartTime: FormatClock(start),
		EndTime:   FormatClock(end),
		Purpose:   strings.TrimSpace(req.Purpose),
		Status:    StatusConfirmed,
	}

	// The repository runs the conflict scan and the insert atomically under a
	// per-(room, date) lock, so it reports ErrTimeConflict itself.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Re-fetch to attach room and user details for the response.
	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) ListMine(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.List(ctx, Filter{UserID: userID})
}

func (s *service) ListAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx, Filter{})
}

// Cancel transitions a confirmed booking to cancelled. Only the booking's
// owner or an admin may cancel it. Cancelling an already-cancelled booking
// reports ErrNotFound rather than succeeding silently.
func (s *service) Cancel(ctx context.Context, id string, actorID string, actorIsAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.Status != StatusConfirmed {
		return ErrNotFound
	}

	if b.UserID != actorID && !actorIsAdmin {
		return ErrPermissionDenied
	}

	return s.repo.CancelConfirmed(ctx, id)
}
