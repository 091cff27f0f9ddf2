package validation

import (
	"fmt"
	"strings"
	"time"
)

// ComputeAge returns today's year minus the birth year. Month and day are
// ignored, so the result can be one year high before the birthday.
func ComputeAge(iso string, today time.Time) (int, error) {
	born, err := ParseDate(iso)
	if err != nil {
		return 0, err
	}
	return today.Year() - born.Year(), nil
}

// ParseDate accepts a date input value (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(iso string) (time.Time, error) {
	iso = strings.TrimSpace(iso)
	if t, err := time.Parse(time.DateOnly, iso); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", iso)
	}
	return t, nil
}
