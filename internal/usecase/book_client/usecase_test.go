package book_client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	appointmentRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/client"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	created      *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *ap
	created.ID = 42
	created.Version = 1
	f.created = &created
	return &created, nil
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

type fakeClientRepo struct {
	client *domain.Client
	err    error
}

func (f *fakeClientRepo) GetByPhone(_ context.Context, _ string) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeConflictCounter struct {
	count int
}

func (f *fakeConflictCounter) Inc() { f.count++ }

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

type fixture struct {
	appointments *fakeAppointmentRepo
	schedule     *fakeScheduleRepo
	catalog      *fakeCatalogRepo
	clients      *fakeClientRepo
	conflicts    *fakeConflictCounter
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		schedule: &fakeScheduleRepo{day: &domain.WorkingDay{
			Date:      mustTime(t, "2026-02-18 00:00"),
			WorkStart: mustTime(t, "2026-02-18 09:00"),
			WorkEnd:   mustTime(t, "2026-02-18 18:00"),
			IsOpen:    true,
		}},
		catalog:   &fakeCatalogRepo{service: &domain.Service{ID: 5, Name: "Маникюр", DurationMinutes: 100, IsActive: true}},
		clients:   &fakeClientRepo{client: &domain.Client{ID: 7, Phone: "+79001234567"}},
		conflicts: &fakeConflictCounter{},
	}
	f.uc = NewUseCase(
		f.appointments, f.schedule, f.catalog, f.clients,
		fakeTxManager{}, f.conflicts, domain.DefaultSchedulePolicy(), nopLogger{},
	)
	return f
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Phone:     "+79001234567",
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 11:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.ClientID)
	assert.Equal(t, string(domain.StatusCreated), resp.Status)
	// 100 минут округляются вверх до 120
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, mustTime(t, "2026-02-18 13:30"), resp.EndTime)
	require.NotNil(t, f.appointments.created)
	assert.False(t, f.appointments.created.IsManual)
}

func TestExecute_OffGridRejected(t *testing.T) {
	f := newFixture(t)

	// 10:00 не лежит на сетке 09:00 + n*150мин
	_, err := f.uc.Execute(context.Background(), &Request{
		Phone:     "+79001234567",
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 10:00"),
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_DoesNotFitWorkingDay(t *testing.T) {
	f := newFixture(t)
	f.catalog.service = &domain.Service{ID: 5, DurationMinutes: 120, IsActive: true}

	// 16:30 + 120 минут = 18:30, позже конца рабочего дня
	_, err := f.uc.Execute(context.Background(), &Request{
		Phone:     "+79001234567",
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 16:30"),
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_SlotOccupied(t *testing.T) {
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{
		{
			StartTime: mustTime(t, "2026-02-18 12:00"),
			EndTime:   mustTime(t, "2026-02-18 13:00"),
			Status:    domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		Phone:     "+79001234567",
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 11:30"),
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_RaceLostOnConstraint(t *testing.T) {
	f := newFixture(t)
	f.appointments.createErr = appointmentRepo.ErrTimeConflict

	_, err := f.uc.Execute(context.Background(), &Request{
		Phone:     "+79001234567",
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 11:30"),
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 1, f.conflicts.count)
}

func TestExecute_DateUnavailable(t *testing.T) {
	f := newFixture(t)
	f.schedule.dayErr = scheduleRepo.ErrDayNotFound

	_, err := f.uc.Execute(context.Background(), &Request{
		Phone:     "+79001234567",
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 11:30"),
	})
	assert.ErrorIs(t, err, ErrDateUnavailable)
}

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture(t)
	f.clients.err = clientRepo.ErrClientNotFound

	_, err := f.uc.Execute(context.Background(), &Request{
		Phone:     "+79000000000",
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 11:30"),
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
