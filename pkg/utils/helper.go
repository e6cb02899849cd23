package utils

import (
	"strconv"
	"time"
)

// DateLayout is the only accepted calendar date format
const DateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseID parses a positive int64 path parameter
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseDate parses YYYY-MM-DD and rejects impossible calendar dates
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts whole days from start to end, both taken as UTC dates.
// Unix seconds are used since time.Duration saturates after about 292 years.
func DaysBetween(start, end time.Time) int {
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}
