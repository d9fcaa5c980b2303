package room

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Type        string
	Capacity    int
	Facilities  []string
	Available   *bool
	Description string
}

// UpdateRequest carries a partial update. Pointer fields distinguish
// "field omitted" from "field set to a zero value", so an explicit
// available=false takes effect while an absent field keeps its prior value.
type UpdateRequest struct {
	Name        *string
	Type        *string
	Capacity    *int
	Facilities  *[]string
	Available   *bool
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Type) == "" || req.Capacity == 0 {
		return nil, ErrMissingFields
	}

	t := Type(req.Type)
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	// Defaults: available unless stated otherwise, facilities empty.
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	facilities := req.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	rm := &Room{
		Name:        strings.TrimSpace(req.Name),
		Type:        t,
		Capacity:    req.Capacity,
		Facilities:  facilities,
		Available:   available,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrMissingFields
		}
		rm.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		t := Type(*req.Type)
		if !t.Valid() {
			return nil, ErrInvalidType
		}
		rm.Type = t
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		rm.Capacity = *req.Capacity
	}
	if req.Facilities != nil {
		rm.Facilities = *req.Facilities
	}
	if req.Available != nil {
		rm.Available = *req.Available
	}
	if req.Description != nil {
		rm.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// Delete removes the room unconditionally. Existing bookings for the room are
// not checked here; the schema cascades their removal.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
