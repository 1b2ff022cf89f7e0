// Package itinerary turns the planning service's free-text daily plan into
// ordered days and activities for display.
package itinerary

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DayToken starts each day of the plan ("Day 1:", "Day 2:" ...).
	DayToken = "Day"
	// ActivityToken starts each activity line within a day.
	ActivityToken = "- "
)

// Day is one rendered day of the itinerary.
type Day struct {
	Number     int
	Activities []string
}

// Label returns the heading shown for the day. It is derived from the
// day's position, never from text inside the plan.
func (d Day) Label() string {
	return fmt.Sprintf("Day %d", d.Number)
}

// Parse splits text on DayToken. Text before the first token and segments
// with no content are dropped; the rest are numbered from 1 in order. Each
// segment's first ActivityToken piece is the day header and is dropped; the
// remaining pieces are trimmed into activities. Text without DayToken
// yields no days.
func Parse(text string) []Day {
	parts := strings.Split(text, DayToken)
	if len(parts) < 2 {
		return nil
	}

	var days []Day
	for _, seg := range parts[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		days = append(days, Day{
			Number:     len(days) + 1,
			Activities: activities(seg),
		})
	}
	return days
}

func activities(seg string) []string {
	pieces := strings.Split(seg, ActivityToken)
	var out []string
	for _, p := range pieces[1:] {
		if a := strings.TrimSpace(p); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// dateLayouts are tried in order when reading a typed start date.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate reads a date typed into the form. Dates are free text, so
// several common layouts are accepted.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// now is replaced in tests.
var now = time.Now

// MonthName returns the English month name of the start date, e.g. "July"
// for "2023-07-04". An unreadable date falls back to the current month.
func MonthName(startDate string) string {
	if t, ok := ParseDate(startDate); ok {
		return t.Month().String()
	}
	return now().Month().String()
}
