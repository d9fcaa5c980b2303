// Command seed inserts the sample room inventory into the database.
// Rooms whose names already exist are skipped.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/campusbook/room-booking-backend/internal/config"
	"github.com/campusbook/room-booking-backend/internal/db"
	"github.com/campusbook/room-booking-backend/internal/room"
)

var sampleRooms = []room.CreateRequest{
	// Classrooms
	{
		Name:        "Classroom A-101",
		Type:        "classroom",
		Capacity:    40,
		Facilities:  []string{"projector", "whiteboard", "sound system"},
		Description: "Large classroom with modern AV equipment",
	},
	{
		Name:        "Classroom A-102",
		Type:        "classroom",
		Capacity:    30,
		Facilities:  []string{"projector", "whiteboard"},
		Description: "Medium-sized classroom",
	},
	{
		Name:        "Classroom B-201",
		Type:        "classroom",
		Capacity:    50,
		Facilities:  []string{"projector", "whiteboard", "computers", "sound system"},
		Description: "Large lecture hall with computer stations",
	},
	{
		Name:        "Classroom C-301",
		Type:        "classroom",
		Capacity:    25,
		Facilities:  []string{"projector", "whiteboard"},
		Description: "Small classroom for seminars",
	},

	// Labs
	{
		Name:        "Computer Lab 1",
		Type:        "lab",
		Capacity:    30,
		Facilities:  []string{"computers", "projector", "network access"},
		Description: "Computer lab with 30 workstations",
	},
	{
		Name:        "Computer Lab 2",
		Type:        "lab",
		Capacity:    25,
		Facilities:  []string{"computers", "projector", "network access", "3D printers"},
		Description: "Advanced computer lab with 3D printing facilities",
	},
	{
		Name:        "Chemistry Lab",
		Type:        "lab",
		Capacity:    20,
		Facilities:  []string{"lab equipment", "safety equipment", "fume hoods"},
		Description: "Fully equipped chemistry laboratory",
	},
	{
		Name:        "Physics Lab",
		Type:        "lab",
		Capacity:    24,
		Facilities:  []string{"lab equipment", "projector", "measurement tools"},
		Description: "Physics laboratory with modern equipment",
	},
	{
		Name:        "Engineering Lab",
		Type:        "lab",
		Capacity:    18,
		Facilities:  []string{"3D printers", "CNC machines", "tools", "computers"},
		Description: "Engineering lab with prototyping equipment",
	},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	roomService := room.NewService(room.NewPgxRepository(pool))

	added, skipped := 0, 0
	for _, req := range sampleRooms {
		if _, err := roomService.Create(ctx, req); err != nil {
			if errors.Is(err, room.ErrDuplicateName) {
				log.Printf("skipped %q: already exists", req.Name)
				skipped++
				continue
			}
			log.Fatalf("failed to create room %q: %v", req.Name, err)
		}
		log.Printf("added %q", req.Name)
		added++
	}

	log.Printf("seeding done: %d added, %d skipped", added, skipped)
}
