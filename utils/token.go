package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hostel-backend/models"
)

var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken signs an HS256 JWT for a user. Claims carry the user id as
// subject plus the username and admin flag so gates can route without a
// second lookup.
func NewAccessToken(secret string, user models.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      float64(user.ID),
		"username": user.Username,
		"admin":    user.Admin,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken validates a signed token and returns the user id it was
// issued for.
func ParseAccessToken(secret, raw string) (uint, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}

// NewReferenceCode returns a short uppercase code stamped on bookings so
// staff can refer to them without exposing row ids.
func NewReferenceCode() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(id[:8])
}
