package parser

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against the trimmed input.
var dateLayouts = []string{
	"January 2, 2006",
	"2006-01-02",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate normalizes a human-entered date string into a sortable time.
// The first matching layout wins. Anything unparseable, including the
// empty string, yields the zero time so that undated posts sort last when
// ordering newest-first. ParseDate never fails.
func ParseDate(s string) time.Time {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}
