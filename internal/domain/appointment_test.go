package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	legal := map[AppointmentStatus][]AppointmentStatus{
		StatusCreated:   {StatusPending, StatusCancelled},
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
	}

	// Перебираем все пары статусов: разрешены ровно шесть переходов,
	// все остальные должны падать с ErrInvalidTransition
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			allowed := false
			for _, next := range legal[from] {
				if next == to {
					allowed = true
				}
			}

			err := ValidateTransition(from, to)
			if allowed {
				assert.NoError(t, err, "%s -> %s must be allowed", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s must be rejected", from, to)
			}
		}
	}
}

func TestCanBeCancelledByClient(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusCreated, true},
		{StatusPending, true},
		{StatusConfirmed, false},
		{StatusCancelled, false},
		{StatusCompleted, false},
	}

	for _, tc := range tests {
		ap := &Appointment{Status: tc.status}
		assert.Equal(t, tc.want, ap.CanBeCancelledByClient(), "status %s", tc.status)
	}
}

func TestIsActive(t *testing.T) {
	for _, st := range AllStatuses {
		ap := &Appointment{Status: st}
		assert.Equal(t, st != StatusCancelled, ap.IsActive(), "status %s", st)
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("CONFIRMED")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseStatus("confirmed")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
