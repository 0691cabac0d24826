package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTC-ScheduleService/pkg/types"
)

const validWeekJSON = `{
	"monday":    {"enabled": true, "start": "08:00", "end": "17:00", "breakStart": "12:00", "breakEnd": "13:00"},
	"tuesday":   {"enabled": true, "start": "08:00", "end": "17:00"},
	"wednesday": {"enabled": true, "start": "08:00", "end": "17:00"},
	"thursday":  {"enabled": true, "start": "08:00", "end": "17:00"},
	"friday":    {"enabled": true, "start": "08:00", "end": "16:00"},
	"saturday":  {"enabled": false, "start": "09:00", "end": "12:00"},
	"sunday":    {"enabled": false, "start": "09:00", "end": "12:00"}
}`

func TestResolveWorkingHours_Valid(t *testing.T) {
	week, resolution := ResolveWorkingHours(json.RawMessage(validWeekJSON))

	assert.Equal(t, WorkingHoursValid, resolution)
	assert.Equal(t, types.TimeString("08:00"), week.Monday.Start)
	assert.Equal(t, types.TimeString("17:00"), week.Monday.End)
	require.True(t, week.Monday.HasBreak())
	assert.Equal(t, types.TimeString("12:00"), *week.Monday.BreakStart)
	assert.False(t, week.Tuesday.HasBreak())
	assert.False(t, week.Saturday.Enabled)
	assert.Equal(t, types.TimeString("16:00"), week.Friday.End)
}

func TestResolveWorkingHours_Missing(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage("null")} {
		week, resolution := ResolveWorkingHours(raw)
		assert.Equal(t, WorkingHoursMissing, resolution)
		assert.Equal(t, DefaultWeekSchedule(), week)
	}
}

func TestResolveWorkingHours_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":           `{broken`,
		"wrong shape":        `[1, 2, 3]`,
		"start after end":    `{"monday": {"start": "18:00", "end": "09:00"}}`,
		"break outside day":  `{"monday": {"start": "09:00", "end": "18:00", "breakStart": "08:00", "breakEnd": "08:30"}}`,
		"half-open break":    `{"monday": {"start": "09:00", "end": "18:00", "breakStart": "12:00"}}`,
		"garbage time value": `{"monday": {"start": "9am", "end": "18:00"}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			week, resolution := ResolveWorkingHours(json.RawMessage(raw))
			assert.Equal(t, WorkingHoursMalformed, resolution)
			assert.Equal(t, DefaultWeekSchedule(), week)
		})
	}
}

func TestResolveWorkingHours_DoubleEncoded(t *testing.T) {
	encoded, err := json.Marshal(validWeekJSON)
	require.NoError(t, err)

	week, resolution := ResolveWorkingHours(encoded)
	assert.Equal(t, WorkingHoursValid, resolution)
	assert.Equal(t, types.TimeString("08:00"), week.Monday.Start)
}

func TestResolveWorkingHours_AbsentEnabledMeansEnabled(t *testing.T) {
	raw := json.RawMessage(`{"monday": {"start": "10:00", "end": "15:00"}}`)

	week, resolution := ResolveWorkingHours(raw)
	assert.Equal(t, WorkingHoursValid, resolution)
	assert.True(t, week.Monday.Enabled)
	assert.Equal(t, types.TimeString("10:00"), week.Monday.Start)
	// Дни, отсутствующие в blob, сохраняют дефолты
	assert.Equal(t, DefaultDaySchedule(), week.Tuesday)
}

func TestDayScheduleValidate(t *testing.T) {
	day := DefaultDaySchedule()
	assert.NoError(t, day.Validate())

	disabled := DaySchedule{Enabled: false}
	assert.NoError(t, disabled.Validate())

	inverted := DaySchedule{Enabled: true, Start: "18:00", End: "09:00"}
	assert.Error(t, inverted.Validate())

	breakPastClose := DaySchedule{
		Enabled:    true,
		Start:      "09:00",
		End:        "18:00",
		BreakStart: tsp("17:30"),
		BreakEnd:   tsp("18:30"),
	}
	assert.Error(t, breakPastClose.Validate())
}

func tsp(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}
