// Package timecalc holds the calendar math the CLI needs. The service
// addresses days as day-of-year/year pairs and reports time as decimal
// hours.
package timecalc

import (
	"fmt"
	"math"
	"time"
)

// FormatHours renders decimal hours as a human-readable string like
// "7h 59m" or "45m".
func FormatHours(hours float64) string {
	minutes := int(math.Round(hours * 60))
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// DayOfYear returns t as the day-of-year/year pair the daily endpoints
// expect.
func DayOfYear(t time.Time) (day, year int) {
	return t.YearDay(), t.Year()
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
	sunday := monday.AddDate(0, 0, 6)
	sunday = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, t.Location())
	return monday, sunday
}

// ISOWeekLabel returns a label like "2017-W10".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
