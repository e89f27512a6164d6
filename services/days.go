package services

import (
	"strings"
	"time"

	"wellbeing/models"
)

// DayClock turns instants into day keys for one time zone. Every same-day
// write collides into one record no matter its time-of-day.
type DayClock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewDayClock(loc *time.Location) DayClock {
	if loc == nil {
		loc = time.Local
	}
	return DayClock{Loc: loc, Now: time.Now}
}

func (d DayClock) location() *time.Location {
	if d.Loc == nil {
		return time.Local
	}
	return d.Loc
}

// Start returns local midnight of the day containing t.
func (d DayClock) Start(t time.Time) time.Time {
	tt := t.In(d.location())
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, d.location())
}

// End returns the last representable instant of the day containing t.
func (d DayClock) End(t time.Time) time.Time {
	tt := t.In(d.location())
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), d.location())
}

func (d DayClock) Today() time.Time {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return d.Start(now())
}

// Parse reads a YYYY-MM-DD day key (a full RFC3339 timestamp is also accepted
// and truncated).
func (d DayClock) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalidf("date is required")
	}
	if t, err := time.ParseInLocation(models.DayLayout, s, d.location()); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalidf("invalid date %q, use YYYY-MM-DD", s)
	}
	return d.Start(t), nil
}

// ParseOrToday is Parse with an empty string meaning today.
func (d DayClock) ParseOrToday(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return d.Today(), nil
	}
	return d.Parse(s)
}

// Window returns the trailing range [today-n days, end of today]. Both ends
// are inclusive, so the range spans n+1 calendar days: Window(30) on the
// 31st starts on the 1st.
func (d DayClock) Window(n int) (time.Time, time.Time) {
	today := d.Today()
	return today.AddDate(0, 0, -n), d.End(today)
}
