package repository

import (
	"fmt"
	"time"
)

// Timestamps are persisted as RFC3339Nano in UTC so that two writes of the
// same instant produce the same string.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return t.UTC(), nil
}
