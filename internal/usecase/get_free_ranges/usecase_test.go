package get_free_ranges

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) ListInWindow(_ context.Context, _, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	day    *domain.WorkingDay
	dayErr error
	blocks []*domain.ScheduleBlock
}

func (f *fakeScheduleRepo) GetDayByDate(_ context.Context, _ time.Time) (*domain.WorkingDay, error) {
	if f.dayErr != nil {
		return nil, f.dayErr
	}
	return f.day, nil
}

func (f *fakeScheduleRepo) ListActiveBlocksInRange(_ context.Context, _, _ time.Time) ([]*domain.ScheduleBlock, error) {
	return f.blocks, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateTimeFormat, value)
	require.NoError(t, err)
	return parsed
}

func TestExecute_GapsAroundBlock(t *testing.T) {
	day := &domain.WorkingDay{
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 10:00"),
		WorkEnd:   mustTime(t, "2026-02-18 19:00"),
		IsOpen:    true,
	}
	schedule := &fakeScheduleRepo{
		day: day,
		blocks: []*domain.ScheduleBlock{
			{
				StartTime: mustTime(t, "2026-02-18 14:00"),
				EndTime:   mustTime(t, "2026-02-18 16:00"),
				Reason:    domain.BlockPersonal,
				IsActive:  true,
			},
		},
	}
	uc := NewUseCase(&fakeAppointmentRepo{}, schedule, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Date})
	require.NoError(t, err)

	require.Len(t, resp.FreeRanges, 2)
	assert.Equal(t, mustTime(t, "2026-02-18 10:00"), resp.FreeRanges[0].StartTime)
	assert.Equal(t, mustTime(t, "2026-02-18 14:00"), resp.FreeRanges[0].EndTime)
	assert.Equal(t, 240, resp.FreeRanges[0].DurationMinutes)
	assert.Equal(t, mustTime(t, "2026-02-18 16:00"), resp.FreeRanges[1].StartTime)
	assert.Equal(t, mustTime(t, "2026-02-18 19:00"), resp.FreeRanges[1].EndTime)
	assert.Equal(t, 180, resp.FreeRanges[1].DurationMinutes)
}

func TestExecute_MinDurationFilter(t *testing.T) {
	day := &domain.WorkingDay{
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 10:00"),
		WorkEnd:   mustTime(t, "2026-02-18 19:00"),
		IsOpen:    true,
	}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			StartTime: mustTime(t, "2026-02-18 10:30"),
			EndTime:   mustTime(t, "2026-02-18 18:00"),
			Status:    domain.StatusConfirmed,
		},
	}}
	uc := NewUseCase(appointments, &fakeScheduleRepo{day: day}, nopLogger{})

	// промежутки 10:00-10:30 и 18:00-19:00; фильтр в 60 минут оставляет второй
	resp, err := uc.Execute(context.Background(), &Request{Date: day.Date, MinDurationMinutes: 60})
	require.NoError(t, err)
	require.Len(t, resp.FreeRanges, 1)
	assert.Equal(t, mustTime(t, "2026-02-18 18:00"), resp.FreeRanges[0].StartTime)
}

func TestExecute_WholeDayFree(t *testing.T) {
	day := &domain.WorkingDay{
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 10:00"),
		WorkEnd:   mustTime(t, "2026-02-18 19:00"),
		IsOpen:    true,
	}
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{day: day}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Date})
	require.NoError(t, err)
	require.Len(t, resp.FreeRanges, 1)
	assert.Equal(t, day.WorkStart, resp.FreeRanges[0].StartTime)
	assert.Equal(t, day.WorkEnd, resp.FreeRanges[0].EndTime)
}

func TestExecute_DateUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{dayErr: scheduleRepo.ErrDayNotFound}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: mustTime(t, "2026-02-18 00:00")})
	assert.ErrorIs(t, err, ErrDateUnavailable)
}
