package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"9:30:00", "25:00", "09:60", "morning", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.Error(t, err, "%q should not parse", bad)
	}
}

func TestTimeStringOrdering(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = TimeString("junk").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("10:30")
	got, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, got)
}

func TestTimeStringOn(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	got, err := TimeString("14:15").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 14, 15, 0, 0, loc), got)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:00"))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan([]byte("12:30")))
	assert.Equal(t, TimeString("12:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 2, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
