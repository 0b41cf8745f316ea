package get_client_slots

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

type fakeCatalogRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
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

func newUseCase(appointments *fakeAppointmentRepo, schedule *fakeScheduleRepo, catalog *fakeCatalogRepo) *UseCase {
	return NewUseCase(appointments, schedule, catalog, domain.DefaultSchedulePolicy(), nopLogger{})
}

func TestExecute_SlotsOnGrid(t *testing.T) {
	day := &domain.WorkingDay{
		ID:        1,
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 09:00"),
		WorkEnd:   mustTime(t, "2026-02-18 18:00"),
		IsOpen:    true,
	}
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{day: day},
		&fakeCatalogRepo{service: &domain.Service{ID: 5, Name: "Маникюр", DurationMinutes: 60, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Date, ServiceID: 5})
	require.NoError(t, err)

	// 09:00-18:00 с шагом 150 минут: 09:00, 11:30, 14:00, 16:30
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, mustTime(t, "2026-02-18 09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, mustTime(t, "2026-02-18 11:30"), resp.Slots[1].StartTime)
	assert.Equal(t, mustTime(t, "2026-02-18 14:00"), resp.Slots[2].StartTime)
	assert.Equal(t, mustTime(t, "2026-02-18 16:30"), resp.Slots[3].StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, mustTime(t, "2026-02-18 10:00"), resp.Slots[0].EndTime)
}

func TestExecute_DurationRoundedUp(t *testing.T) {
	day := &domain.WorkingDay{
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 09:00"),
		WorkEnd:   mustTime(t, "2026-02-18 18:00"),
		IsOpen:    true,
	}
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{day: day},
		&fakeCatalogRepo{service: &domain.Service{ID: 5, DurationMinutes: 100, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Date, ServiceID: 5})
	require.NoError(t, err)
	assert.Equal(t, 120, resp.DurationMinutes)
}

func TestExecute_OccupiedSlotsFiltered(t *testing.T) {
	day := &domain.WorkingDay{
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 09:00"),
		WorkEnd:   mustTime(t, "2026-02-18 18:00"),
		IsOpen:    true,
	}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			StartTime: mustTime(t, "2026-02-18 11:00"),
			EndTime:   mustTime(t, "2026-02-18 12:00"),
			Status:    domain.StatusConfirmed,
		},
	}}
	uc := newUseCase(
		appointments,
		&fakeScheduleRepo{day: day},
		&fakeCatalogRepo{service: &domain.Service{ID: 5, DurationMinutes: 60, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Date, ServiceID: 5})
	require.NoError(t, err)

	// слот 11:30 пересекается с записью 11:00-12:00 и выпадает
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, mustTime(t, "2026-02-18 09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, mustTime(t, "2026-02-18 14:00"), resp.Slots[1].StartTime)
	assert.Equal(t, mustTime(t, "2026-02-18 16:30"), resp.Slots[2].StartTime)
}

func TestExecute_SlotMustFitWorkingDay(t *testing.T) {
	// услуга на 2 часа: слот 16:30 закончился бы в 18:30 и не помещается
	day := &domain.WorkingDay{
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 09:00"),
		WorkEnd:   mustTime(t, "2026-02-18 18:00"),
		IsOpen:    true,
	}
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{day: day},
		&fakeCatalogRepo{service: &domain.Service{ID: 5, DurationMinutes: 120, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Date, ServiceID: 5})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, mustTime(t, "2026-02-18 14:00"), resp.Slots[2].StartTime)
}

func TestExecute_DateUnavailable(t *testing.T) {
	t.Run("no working day", func(t *testing.T) {
		uc := newUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{dayErr: scheduleRepo.ErrDayNotFound},
			&fakeCatalogRepo{service: &domain.Service{ID: 5, DurationMinutes: 60, IsActive: true}},
		)
		_, err := uc.Execute(context.Background(), &Request{Date: mustTime(t, "2026-02-18 00:00"), ServiceID: 5})
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("day off", func(t *testing.T) {
		day := &domain.WorkingDay{
			Date:      mustTime(t, "2026-02-18 00:00"),
			WorkStart: mustTime(t, "2026-02-18 09:00"),
			WorkEnd:   mustTime(t, "2026-02-18 18:00"),
			IsOpen:    false,
		}
		uc := newUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{day: day},
			&fakeCatalogRepo{service: &domain.Service{ID: 5, DurationMinutes: 60, IsActive: true}},
		)
		_, err := uc.Execute(context.Background(), &Request{Date: day.Date, ServiceID: 5})
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})
}

func TestExecute_InactiveService(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeCatalogRepo{service: &domain.Service{ID: 5, DurationMinutes: 60, IsActive: false}},
	)
	_, err := uc.Execute(context.Background(), &Request{Date: mustTime(t, "2026-02-18 00:00"), ServiceID: 5})
	assert.ErrorIs(t, err, ErrServiceInactive)
}
