package common

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

// ValidationError represents request-level validation failures (flags,
// gRPC fields). Record-level validation lives in internal/record.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// RequireNonEmpty validates that a string field is present.
func RequireNonEmpty(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Value: value, Message: "is required"}
	}
	return nil
}

// RequireUUID validates that a string field parses as a UUID.
func RequireUUID(field, value string) (uuid.UUID, *ValidationError) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, &ValidationError{Field: field, Value: value, Message: "must be a valid UUID"}
	}
	return id, nil
}

// RequireCompany validates that a string names a known company.
func RequireCompany(field, value string) (constants.Company, *ValidationError) {
	c, ok := constants.ParseCompany(value)
	if !ok {
		return "", &ValidationError{Field: field, Value: value, Message: "must be one of: afinia, aire"}
	}
	return c, nil
}
