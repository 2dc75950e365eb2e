package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
// Kept local rather than importing validation to avoid a cross-layer dependency.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// DateOnly truncates a stored date string to its YYYY-MM-DD prefix. SQLite
// returns DATE columns as text and some drivers append a time component.
func DateOnly(str string) string {
	if len(str) > 10 {
		return str[:10]
	}
	return str
}
