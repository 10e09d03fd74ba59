// Package timeframe resolves timeframe selections (all/day/week/month) into
// inclusive calendar date ranges for bounding transaction queries.
//
// All boundaries are computed in the reference date's location using local
// wall-clock components. Serializing via UTC instead would shift boundaries
// by a day for users west of UTC near midnight.
package timeframe

import (
	"fmt"
	"regexp"
	"time"
)

// Timeframe is the granularity used to bound a transaction query by date.
type Timeframe string

const (
	All   Timeframe = "all"
	Day   Timeframe = "day"
	Week  Timeframe = "week"
	Month Timeframe = "month"
)

// Parse validates a timeframe string. An empty string resolves to All.
func Parse(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case "":
		return All, nil
	case All, Day, Week, Month:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("invalid timeframe %q", s)
}

// DateRange is an inclusive [From, To] pair of YYYY-MM-DD dates.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

var ymdRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if !ymdRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// FormatDate serializes t as YYYY-MM-DD from its local date components.
func FormatDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Resolve maps a timeframe and reference date to an inclusive date range.
// All returns nil, meaning no date filtering applies upstream.
func Resolve(tf Timeframe, ref time.Time) *DateRange {
	switch tf {
	case Day:
		d := FormatDate(ref)
		return &DateRange{From: d, To: d}
	case Week:
		start := startOfISOWeek(ref)
		return &DateRange{
			From: FormatDate(start),
			To:   FormatDate(start.AddDate(0, 0, 6)),
		}
	case Month:
		year, month, _ := ref.Date()
		first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
		// Day 0 of the next month is the last day of this month.
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, ref.Location())
		return &DateRange{From: FormatDate(first), To: FormatDate(last)}
	default:
		return nil
	}
}

// startOfISOWeek shifts ref back to the Monday of its ISO week.
// Sunday counts as day 7, so it shifts back six days.
func startOfISOWeek(ref time.Time) time.Time {
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return ref.AddDate(0, 0, 1-weekday)
}
