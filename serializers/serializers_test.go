package serializers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestUserViewHidesPassword(t *testing.T) {
	user := models.User{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$somethinghashed",
		Admin:    true,
	}

	view := NewUserView(user)
	assert.Equal(t, uint(7), view.ID)
	assert.True(t, view.Admin)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hashed")
	assert.NotContains(t, string(raw), "password")
}

func TestBookingViewsProjectFlatFields(t *testing.T) {
	checkOut := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	booking := models.RoomBooking{
		ID:            3,
		UserID:        7,
		RoomID:        12,
		Status:        models.BookingStatusApproved,
		ReferenceCode: "BK-ABCD1234",
		CheckIn:       time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		CheckOut:      &checkOut,
		User:          models.User{ID: 7, Username: "alice", Password: "hidden"},
		Room:          models.Room{ID: 12, Name: "Room 101"},
	}

	view := NewRoomBookingView(booking)
	assert.Equal(t, uint(3), view.ID)
	assert.Equal(t, uint(12), view.RoomID)
	assert.Equal(t, "BK-ABCD1234", view.ReferenceCode)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice", "relations are not embedded")
}

func TestSliceConstructorsReturnEmptyNotNil(t *testing.T) {
	assert.NotNil(t, NewRoomViews(nil))
	assert.NotNil(t, NewMessViews(nil))
	assert.NotNil(t, NewTicketViews(nil))
	assert.NotNil(t, NewAnnouncementViews(nil))
	assert.NotNil(t, NewUserViews(nil))
	assert.NotNil(t, NewTicketReplyViews(nil))
}

func TestTicketViews(t *testing.T) {
	tickets := []models.Ticket{
		{ID: 1, UserID: 2, Title: "Leaky tap", Status: models.TicketStatusPending},
		{ID: 2, UserID: 2, Title: "Broken fan", Status: models.TicketStatusClosed},
	}
	views := NewTicketViews(tickets)
	require.Len(t, views, 2)
	assert.Equal(t, "Leaky tap", views[0].Title)
	assert.Equal(t, models.TicketStatusClosed, views[1].Status)
}
