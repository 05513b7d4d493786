package utils

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDateParam reads a query date given as RFC3339 or YYYY-MM-DD. A bare
// day used as an upper bound covers the whole day.
func ParseDateParam(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
