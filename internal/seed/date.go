package seed

import (
	"fmt"
	"strings"
	"time"
)

// Tried in order. Layouts without an offset parse as UTC.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeDate rewrites a trailing UTC designator "Z" as "+00:00".
func NormalizeDate(s string) string {
	if strings.HasSuffix(s, "Z") {
		return strings.TrimSuffix(s, "Z") + "+00:00"
	}
	return s
}

// ParseDate parses an ISO-8601 timestamp after NormalizeDate.
func ParseDate(s string) (time.Time, error) {
	normalized := NormalizeDate(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", s)
}
