package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestTicketService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)
	user := createTestUser(t, db, "alice", false)

	ticket, err := svc.Create(user.ID, "Leaky tap", "The tap in room 101 leaks")
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)
	assert.Equal(t, user.ID, ticket.UserID)
}

func TestTicketService_Reply(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)

	user := createTestUser(t, db, "alice", false)
	admin := createTestUser(t, db, "warden", true)

	t.Run("closes ticket and creates exactly one reply", func(t *testing.T) {
		ticket, err := svc.Create(user.ID, "Leaky tap", "The tap leaks")
		require.NoError(t, err)

		reply, err := svc.Reply(admin.ID, ticket.ID, "Plumber scheduled for Friday")
		require.NoError(t, err)
		assert.Equal(t, ticket.ID, reply.TicketID)
		assert.Equal(t, admin.ID, reply.UserID)

		var stored models.Ticket
		require.NoError(t, db.First(&stored, ticket.ID).Error)
		assert.Equal(t, models.TicketStatusClosed, stored.Status)

		var count int64
		require.NoError(t, db.Model(&models.TicketReply{}).Where("ticket_id = ?", ticket.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("missing ticket leaves no stray reply", func(t *testing.T) {
		_, err := svc.Reply(admin.ID, 9999, "into the void")
		assert.ErrorIs(t, err, ErrTicketNotFound)

		var count int64
		require.NoError(t, db.Model(&models.TicketReply{}).Where("ticket_id = ?", 9999).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}

func TestTicketService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)

	user := createTestUser(t, db, "alice", false)
	admin := createTestUser(t, db, "warden", true)

	t.Run("removes ticket and its reply", func(t *testing.T) {
		ticket, err := svc.Create(user.ID, "Broken fan", "Ceiling fan rattles")
		require.NoError(t, err)
		_, err = svc.Reply(admin.ID, ticket.ID, "Replaced")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ticket.ID))

		var tickets, replies int64
		require.NoError(t, db.Model(&models.Ticket{}).Where("id = ?", ticket.ID).Count(&tickets).Error)
		require.NoError(t, db.Model(&models.TicketReply{}).Where("ticket_id = ?", ticket.ID).Count(&replies).Error)
		assert.EqualValues(t, 0, tickets)
		assert.EqualValues(t, 0, replies)
	})

	t.Run("removes at most one reply", func(t *testing.T) {
		ticket, err := svc.Create(user.ID, "Wifi down", "No signal on second floor")
		require.NoError(t, err)
		// Two replies can only exist if inserted outside the portal flow.
		require.NoError(t, db.Create(&models.TicketReply{TicketID: ticket.ID, UserID: admin.ID, Description: "first"}).Error)
		require.NoError(t, db.Create(&models.TicketReply{TicketID: ticket.ID, UserID: admin.ID, Description: "second"}).Error)

		require.NoError(t, svc.Delete(ticket.ID))

		var replies []models.TicketReply
		require.NoError(t, db.Where("ticket_id = ?", ticket.ID).Find(&replies).Error)
		require.Len(t, replies, 1)
		assert.Equal(t, "second", replies[0].Description, "only the first reply is removed")
	})

	t.Run("works for tickets without replies", func(t *testing.T) {
		ticket, err := svc.Create(user.ID, "Noisy neighbours", "Room 102 parties nightly")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ticket.ID))
		assert.ErrorIs(t, svc.Delete(ticket.ID), ErrTicketNotFound)
	})
}

func TestTicketService_Listings(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)

	alice := createTestUser(t, db, "alice", false)
	bob := createTestUser(t, db, "bob", false)
	admin := createTestUser(t, db, "warden", true)

	t1, err := svc.Create(alice.ID, "Leaky tap", "drips")
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, "Broken lock", "door won't latch")
	require.NoError(t, err)
	_, err = svc.Reply(admin.ID, t1.ID, "fixed")
	require.NoError(t, err)

	t.Run("user sees only own tickets", func(t *testing.T) {
		tickets, replies, err := svc.ListForUser(alice.ID)
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "Leaky tap", tickets[0].Title)
		assert.Len(t, replies, 1)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		tickets, replies, err := svc.ListAll()
		require.NoError(t, err)
		assert.Len(t, tickets, 2)
		assert.Len(t, replies, 1)
	})
}
