package room

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rooms  map[string]*Room
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: map[string]*Room{}}
}

func (f *fakeRepo) Create(ctx context.Context, rm *Room) error {
	for _, e := range f.rooms {
		if e.Name == rm.Name {
			return ErrDuplicateName
		}
	}
	f.nextID++
	rm.ID = fmt.Sprintf("room-%d", f.nextID)
	cp := *rm
	f.rooms[rm.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rm
	return &cp, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Room, error) {
	var out []*Room
	for _, rm := range f.rooms {
		cp := *rm
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, rm *Room) error {
	if _, ok := f.rooms[rm.ID]; !ok {
		return ErrNotFound
	}
	for _, e := range f.rooms {
		if e.ID != rm.ID && e.Name == rm.Name {
			return ErrDuplicateName
		}
	}
	cp := *rm
	f.rooms[rm.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

func boolPtr(b bool) *bool          { return &b }
func strPtr(s string) *string       { return &s }
func intPtr(n int) *int             { return &n }
func slicePtr(s []string) *[]string { return &s }

func TestCreateDefaults(t *testing.T) {
	svc := NewService(newFakeRepo())

	rm, err := svc.Create(context.Background(), CreateRequest{
		Name:     "Lecture Hall B",
		Type:     "classroom",
		Capacity: 120,
	})
	require.NoError(t, err)

	assert.True(t, rm.Available)
	assert.NotNil(t, rm.Facilities)
	assert.Empty(t, rm.Facilities)
	assert.NotEmpty(t, rm.ID)
}

func TestCreateExplicitlyUnavailable(t *testing.T) {
	svc := NewService(newFakeRepo())

	rm, err := svc.Create(context.Background(), CreateRequest{
		Name:      "Server Room",
		Type:      "lab",
		Capacity:  4,
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, rm.Available)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Type: "classroom", Capacity: 10})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, CreateRequest{Name: "X", Capacity: 10})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, CreateRequest{Name: "X", Type: "auditorium", Capacity: 10})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = svc.Create(ctx, CreateRequest{Name: "X", Type: "lab", Capacity: -3})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "Physics Lab", Type: "lab", Capacity: 24})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{Name: "Physics Lab", Type: "lab", Capacity: 30})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	rm, err := svc.Create(ctx, CreateRequest{
		Name:       "Classroom A-101",
		Type:       "classroom",
		Capacity:   40,
		Facilities: []string{"projector", "whiteboard"},
	})
	require.NoError(t, err)

	// Only the name changes; everything else keeps its prior value.
	updated, err := svc.Update(ctx, rm.ID, UpdateRequest{Name: strPtr("Classroom A-102")})
	require.NoError(t, err)
	assert.Equal(t, "Classroom A-102", updated.Name)
	assert.Equal(t, TypeClassroom, updated.Type)
	assert.Equal(t, 40, updated.Capacity)
	assert.Equal(t, []string{"projector", "whiteboard"}, updated.Facilities)
	assert.True(t, updated.Available)
}

func TestUpdateExplicitFalse(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	rm, err := svc.Create(ctx, CreateRequest{Name: "Room Z", Type: "classroom", Capacity: 10})
	require.NoError(t, err)

	// available=false must take effect even though false is the zero value.
	updated, err := svc.Update(ctx, rm.ID, UpdateRequest{Available: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Available)
}

func TestUpdateValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	rm, err := svc.Create(ctx, CreateRequest{Name: "Room Y", Type: "lab", Capacity: 8})
	require.NoError(t, err)

	_, err = svc.Update(ctx, rm.ID, UpdateRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Update(ctx, rm.ID, UpdateRequest{Type: strPtr("hallway")})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = svc.Update(ctx, rm.ID, UpdateRequest{Capacity: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = svc.Update(ctx, "missing", UpdateRequest{Capacity: intPtr(5)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFacilities(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	rm, err := svc.Create(ctx, CreateRequest{
		Name:       "Media Lab",
		Type:       "lab",
		Capacity:   16,
		Facilities: []string{"computers"},
	})
	require.NoError(t, err)

	// An explicit empty list clears the facilities.
	updated, err := svc.Update(ctx, rm.ID, UpdateRequest{Facilities: slicePtr([]string{})})
	require.NoError(t, err)
	assert.Empty(t, updated.Facilities)
}

func TestDelete(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	rm, err := svc.Create(ctx, CreateRequest{Name: "Temp Room", Type: "classroom", Capacity: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rm.ID))

	_, err = svc.GetByID(ctx, rm.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, rm.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
