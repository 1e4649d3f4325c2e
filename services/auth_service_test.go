package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestAuthService_Register(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	t.Run("creates non-admin user with hashed password", func(t *testing.T) {
		user, err := svc.Register("alice", "alice@example.com", "password123")
		require.NoError(t, err)

		assert.NotZero(t, user.ID)
		assert.False(t, user.Admin)
		assert.NotEqual(t, "password123", user.Password)

		var stored models.User
		require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
		assert.Equal(t, "alice@example.com", stored.Email)
		assert.False(t, stored.Admin)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := svc.Register("alice", "other@example.com", "password123")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Register("someone", "alice@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	admin := createTestUser(t, db, "warden", true)
	resident := createTestUser(t, db, "bob", false)

	t.Run("accepts correct credentials", func(t *testing.T) {
		user, err := svc.Authenticate("warden", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, user.ID)
		assert.True(t, user.Admin)

		user, err = svc.Authenticate("bob", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, resident.ID, user.ID)
		assert.False(t, user.Admin)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("bob", "not-the-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		_, err := svc.Authenticate("nobody", "secret-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	createTestUser(t, db, "warden", true)
	createTestUser(t, db, "bob", false)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
