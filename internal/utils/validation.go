package utils

import (
	"fmt"
	"time"
)

// ValidateClockTime checks a "HH:MM" time-of-day string. Shift templates may
// wrap past midnight, so no ordering between start and end is enforced.
func ValidateClockTime(field string, value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("%s must be a HH:MM clock time", field)
	}
	return nil
}

// ValidateDate checks a "YYYY-MM-DD" calendar date string.
func ValidateDate(field string, value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s must be a YYYY-MM-DD date", field)
	}
	return nil
}
