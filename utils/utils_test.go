package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	user := models.User{ID: 42, Username: "alice", Admin: false}

	token, err := NewAccessToken("secret", user, time.Hour)
	require.NoError(t, err)

	id, err := ParseAccessToken("secret", token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseAccessToken("not-the-secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		stale, err := NewAccessToken("secret", user, -time.Minute)
		require.NoError(t, err)
		_, err = ParseAccessToken("secret", stale)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewReferenceCode(t *testing.T) {
	a := NewReferenceCode()
	b := NewReferenceCode()
	assert.True(t, strings.HasPrefix(a, "BK-"))
	assert.Len(t, a, 11)
	assert.NotEqual(t, a, b)
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Username string `validate:"required,min=4,max=15"`
		Email    string `validate:"required,email"`
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(form{Username: "alice", Email: "alice@example.com"}))
	})

	t.Run("field messages", func(t *testing.T) {
		fields := ValidateStruct(form{Username: "al", Email: "nope"})
		require.NotNil(t, fields)
		assert.Contains(t, fields["username"], "at least 4")
		assert.Equal(t, "invalid email address", fields["email"])
	})

	t.Run("missing required", func(t *testing.T) {
		fields := ValidateStruct(form{})
		require.NotNil(t, fields)
		assert.Equal(t, "this field is required", fields["username"])
	})
}

func TestIsDuplicateEntry(t *testing.T) {
	assert.False(t, IsDuplicateEntry(nil))
	assert.False(t, IsDuplicateEntry(errors.New("connection refused")))
	assert.True(t, IsDuplicateEntry(errors.New("Error 1062: Duplicate entry 'alice' for key 'username'")))
	assert.True(t, IsDuplicateEntry(errors.New("UNIQUE constraint failed: users.username")))
}
