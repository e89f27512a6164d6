package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayClockStartEnd(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	d := DayClock{Loc: loc}

	// 21:00 UTC is already the next day at UTC+5.
	in := time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)
	start := d.Start(in)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 2, 23, 59, 59, 999999999, loc), d.End(in))
}

func TestDayClockParse(t *testing.T) {
	d := testClock()

	got, err := d.Parse("2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, day("2026-10-01"), got)

	got, err = d.Parse("2026-10-01T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, day("2026-10-01"), got)

	_, err = d.Parse("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = d.Parse("01/10/2026")
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err = d.ParseOrToday(" ")
	require.NoError(t, err)
	assert.Equal(t, day("2026-10-16"), got)
}

func TestDayClockWindow(t *testing.T) {
	from, to := testClock().Window(30)
	assert.Equal(t, day("2026-09-16"), from)
	assert.Equal(t, day("2026-10-16").Add(24*time.Hour-time.Nanosecond), to)
	assert.Equal(t, 31, int(to.Add(time.Nanosecond).Sub(from)/(24*time.Hour)), "both ends inclusive")
}
