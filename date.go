package harvest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	compactLayout = "20060102"
	clockLayout   = "3:04 PM"
)

// Date is a calendar day without a time component. It marshals to the
// "2006-01-02" form used in resource bodies and encodes as the compact
// "20060102" form in query parameters.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// EncodeValues renders the compact day form the service requires in query
// strings (report ranges, invoice filters).
func (d Date) EncodeValues(key string, v *url.Values) error {
	v.Set(key, d.Format(compactLayout))
	return nil
}

// ClockTime is the time-of-day portion of a timestamp, as shown on a
// timesheet ("2:05 PM"). The service itself emits a lowercase variant
// ("2:05pm"), which decodes equally.
type ClockTime struct {
	time.Time
}

// NewClockTime returns the ClockTime for the given wall-clock reading.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

// ClockTimeOf projects t onto its time of day.
func ClockTimeOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute())
}

func (c ClockTime) String() string {
	return c.Format(clockLayout)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Format(clockLayout))
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	// Timers that never ran come through as "".
	if s == "" {
		c.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{clockLayout, "3:04PM", "15:04"} {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			c.Time = t
			return nil
		}
	}
	return fmt.Errorf("parsing clock time %q: unrecognized format", s)
}
