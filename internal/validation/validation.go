// Package validation implements request validation at the API boundary.
// The engine assumes sanitized numeric inputs; everything enforced here is
// what lets it stay free of defensive checks.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID = fmt.Errorf("invalid UUID format")
	ErrInvalidDate = fmt.Errorf("invalid date format")
)

// Error carries field-specific validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateDate checks that a string is a well-formed YYYY-MM-DD date.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return nil
}

// requireDate records a field error when the date is missing or malformed.
func requireDate(errors map[string]string, field, date string) {
	if strings.TrimSpace(date) == "" {
		errors[field] = "date is required"
		return
	}
	if err := ValidateDate(date); err != nil {
		errors[field] = err.Error()
	}
}

// requireSymbol records a field error when the symbol is missing.
func requireSymbol(errors map[string]string, symbol string) {
	if strings.TrimSpace(symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
}
