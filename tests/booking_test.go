package tests

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHttp "github.com/campusbook/room-booking-backend/internal/booking/http"
	roomHttp "github.com/campusbook/room-booking-backend/internal/room/http"
	"github.com/campusbook/room-booking-backend/internal/user"
)

func createTestRoom(t *testing.T, token, name string, available bool) string {
	payload := roomHttp.CreateRoomBody{
		Name:      name,
		Type:      "classroom",
		Capacity:  30,
		Available: &available,
	}
	w := executeRequest("POST", "/v1/rooms", payload, token)
	require.Equal(t, http.StatusCreated, w.Code, "Failed to create test room")

	var resp roomHttp.RoomResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp.ID
}

func testDate(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func TestBookingFlow(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "Admin", "admin@book.edu", "pass12", user.RoleAdmin)
	alice := createTestUser(t, "Alice", "alice@book.edu", "pass12", user.RoleStudent)
	bob := createTestUser(t, "Bob", "bob@book.edu", "pass12", user.RoleFaculty)

	adminToken := generateToken(admin.ID, admin.Email)
	aliceToken := generateToken(alice.ID, alice.Email)
	bobToken := generateToken(bob.ID, bob.Email)

	roomID := createTestRoom(t, adminToken, "Seminar Room 3", true)

	var bookingID string

	t.Run("Create Booking", func(t *testing.T) {
		payload := bookingHttp.CreateBookingBody{
			RoomID:    roomID,
			Date:      testDate(1),
			StartTime: "9:00", // unpadded on purpose
			EndTime:   "10:30",
			Purpose:   "Study group",
		}
		w := executeRequest("POST", "/v1/bookings", payload, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp bookingHttp.BookingResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "09:00", resp.StartTime, "Times should be zero-padded")
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "Seminar Room 3", resp.Room.Name, "Room details should be attached")
		assert.Equal(t, "Alice", resp.User.Name, "User details should be attached")
		bookingID = resp.ID
	})

	t.Run("Overlapping Booking Conflicts", func(t *testing.T) {
		payload := bookingHttp.CreateBookingBody{
			RoomID:    roomID,
			Date:      testDate(1),
			StartTime: "10:00",
			EndTime:   "11:00",
			Purpose:   "Office hours",
		}
		w := executeRequest("POST", "/v1/bookings", payload, bobToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Back-to-back Booking Allowed", func(t *testing.T) {
		payload := bookingHttp.CreateBookingBody{
			RoomID:    roomID,
			Date:      testDate(1),
			StartTime: "10:30",
			EndTime:   "11:30",
			Purpose:   "Office hours",
		}
		w := executeRequest("POST", "/v1/bookings", payload, bobToken)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("List Mine Is Scoped", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings", nil, aliceToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []bookingHttp.BookingResponse
		err := json.Unmarshal(w.Body.Bytes(), &items)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, alice.ID, items[0].User.ID)
	})

	t.Run("List All Requires Admin", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/all", nil, aliceToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin Lists All", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/all", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []bookingHttp.BookingResponse
		err := json.Unmarshal(w.Body.Bytes(), &items)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("Stranger Cannot Cancel", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/bookings/"+bookingID, nil, bobToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Owner Cancels", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/bookings/"+bookingID, nil, aliceToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Second Cancel Returns Not Found", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/bookings/"+bookingID, nil, aliceToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Cancelled Slot Is Rebookable", func(t *testing.T) {
		payload := bookingHttp.CreateBookingBody{
			RoomID:    roomID,
			Date:      testDate(1),
			StartTime: "09:00",
			EndTime:   "10:30",
			Purpose:   "Retaken slot",
		}
		w := executeRequest("POST", "/v1/bookings", payload, bobToken)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Admin Cancels Someone Else's Booking", func(t *testing.T) {
		// Bob's back-to-back booking from earlier.
		w := executeRequest("GET", "/v1/bookings", nil, bobToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []bookingHttp.BookingResponse
		err := json.Unmarshal(w.Body.Bytes(), &items)
		require.NoError(t, err)
		require.NotEmpty(t, items)

		wCancel := executeRequest("DELETE", "/v1/bookings/"+items[0].ID, nil, adminToken)
		assert.Equal(t, http.StatusOK, wCancel.Code)
	})
}

func TestBookingValidation(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "Admin", "admin@val2.edu", "pass12", user.RoleAdmin)
	student := createTestUser(t, "Student", "student@val2.edu", "pass12", user.RoleStudent)

	adminToken := generateToken(admin.ID, admin.Email)
	studentToken := generateToken(student.ID, student.Email)

	openRoom := createTestRoom(t, adminToken, "Open Room", true)
	closedRoom := createTestRoom(t, adminToken, "Closed Room", false)

	valid := func() bookingHttp.CreateBookingBody {
		return bookingHttp.CreateBookingBody{
			RoomID:    openRoom,
			Date:      testDate(1),
			StartTime: "14:00",
			EndTime:   "15:00",
			Purpose:   "Review session",
		}
	}

	t.Run("Missing Purpose", func(t *testing.T) {
		payload := valid()
		payload.Purpose = ""
		w := executeRequest("POST", "/v1/bookings", payload, studentToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing Fields Reported Before Room State", func(t *testing.T) {
		payload := valid()
		payload.RoomID = closedRoom
		payload.Purpose = ""
		w := executeRequest("POST", "/v1/bookings", payload, studentToken)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp["error"], "missing", "Missing field should win over room availability")
	})

	t.Run("Unavailable Room", func(t *testing.T) {
		payload := valid()
		payload.RoomID = closedRoom
		w := executeRequest("POST", "/v1/bookings", payload, studentToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Room", func(t *testing.T) {
		payload := valid()
		payload.RoomID = "00000000-0000-0000-0000-000000000000"
		w := executeRequest("POST", "/v1/bookings", payload, studentToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed Time", func(t *testing.T) {
		payload := valid()
		payload.StartTime = "25:00"
		w := executeRequest("POST", "/v1/bookings", payload, studentToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Inverted Range", func(t *testing.T) {
		payload := valid()
		payload.StartTime = "15:00"
		payload.EndTime = "14:00"
		w := executeRequest("POST", "/v1/bookings", payload, studentToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Past Date", func(t *testing.T) {
		payload := valid()
		payload.Date = testDate(-1)
		w := executeRequest("POST", "/v1/bookings", payload, studentToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Anonymous Cannot Book", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", valid(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestConcurrentBookingConflict hammers the same slot from many goroutines.
// Exactly one request may win; the per-(room, date) lock in the repository
// makes the conflict check and the insert atomic.
func TestConcurrentBookingConflict(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "Admin", "admin@race.edu", "pass12", user.RoleAdmin)
	adminToken := generateToken(admin.ID, admin.Email)
	roomID := createTestRoom(t, adminToken, "Contested Room", true)

	const workers = 10
	tokens := make([]string, workers)
	for i := 0; i < workers; i++ {
		u := createTestUser(t, "Racer", string(rune('a'+i))+"@race.edu", "pass12", user.RoleStudent)
		tokens[i] = generateToken(u.ID, u.Email)
	}

	payload := bookingHttp.CreateBookingBody{
		RoomID:    roomID,
		Date:      testDate(1),
		StartTime: "13:00",
		EndTime:   "14:00",
		Purpose:   "Race for the slot",
	}

	codes := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := executeRequest("POST", "/v1/bookings", payload, tokens[i])
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	created, conflicted := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}

	assert.Equal(t, 1, created, "Exactly one request should win the slot")
	assert.Equal(t, workers-1, conflicted, "All other requests should conflict")
}
