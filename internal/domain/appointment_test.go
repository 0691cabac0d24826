package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentOccupancy(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusCompleted} {
		a := Appointment{Status: status}
		assert.True(t, a.OccupiesCapacity(), "%s must occupy capacity", status)
	}
	cancelled := Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.OccupiesCapacity())
}

func TestAppointmentCanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeCancelled())
}

func TestEffectiveDuration(t *testing.T) {
	base := Appointment{}
	assert.Equal(t, 30, base.EffectiveDuration(30))

	sixty := 60
	override := Appointment{DurationMinutes: &sixty}
	assert.Equal(t, 60, override.EffectiveDuration(30))

	zero := 0
	ignored := Appointment{DurationMinutes: &zero}
	assert.Equal(t, 30, ignored.EffectiveDuration(30))
}

func TestOccupiedInterval(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	ninety := 90
	a := Appointment{AppointmentDate: start, DurationMinutes: &ninety}

	gotStart, gotEnd := a.OccupiedInterval(30)
	assert.Equal(t, start, gotStart)
	assert.Equal(t, start.Add(90*time.Minute), gotEnd)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("pending"))
}
