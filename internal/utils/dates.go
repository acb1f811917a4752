package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/bandprep/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the system timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// Yesterday returns the date string for the calendar day before day.
// The input must be a valid YYYY-MM-DD string.
func Yesterday(day string) (string, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat), nil
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateDate checks if the string matches the standard date format.
func ValidateDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// DaysUntil returns the number of whole calendar days from today until the
// given date. Negative when the date is in the past.
func DaysUntil(dateStr string) (int, error) {
	target, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24), nil
}
