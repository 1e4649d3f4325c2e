package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator tags over a payload and returns a
// field -> message map, or nil when the payload is valid.
func ValidateStruct(payload interface{}) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "this field is required"
		case "email":
			fields[name] = "invalid email address"
		case "min":
			fields[name] = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "max":
			fields[name] = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "oneof":
			fields[name] = fmt.Sprintf("must be one of: %s", fe.Param())
		default:
			fields[name] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return fields
}

// IsDuplicateEntry reports whether err is a unique-key violation. Matches
// both the MySQL and SQLite wordings.
func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
