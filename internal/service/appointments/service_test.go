package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	appointmentRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/client"
)

type fakeAppointmentRepo struct {
	byID            map[int64]*domain.Appointment
	updateStatusErr error
	deleted         []int64
	lastStatus      domain.AppointmentStatus
	lastNotes       *string
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	ap, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeAppointmentRepo) ListInWindow(_ context.Context, _, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	var list []*domain.Appointment
	for _, ap := range f.byID {
		list = append(list, ap)
	}
	return list, nil
}

func (f *fakeAppointmentRepo) ListByClient(_ context.Context, clientID int64, _ time.Time) ([]*domain.Appointment, error) {
	var list []*domain.Appointment
	for _, ap := range f.byID {
		if ap.ClientID == clientID {
			list = append(list, ap)
		}
	}
	return list, nil
}

func (f *fakeAppointmentRepo) ListByStatus(_ context.Context, status domain.AppointmentStatus, _ time.Time) ([]*domain.Appointment, error) {
	var list []*domain.Appointment
	for _, ap := range f.byID {
		if ap.Status == status {
			list = append(list, ap)
		}
	}
	return list, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id, version int64, status domain.AppointmentStatus, masterNotes *string) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	ap, ok := f.byID[id]
	if !ok || ap.Version != version {
		return appointmentRepo.ErrVersionConflict
	}
	ap.Status = status
	ap.Version++
	f.lastStatus = status
	f.lastNotes = masterNotes
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
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

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

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
	clients      *fakeClientRepo
	svc          *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
			10: {
				ID:        10,
				ClientID:  7,
				ServiceID: 5,
				StartTime: mustTime(t, "2026-02-18 11:30"),
				EndTime:   mustTime(t, "2026-02-18 13:30"),
				Status:    domain.StatusCreated,
				Version:   1,
			},
		}},
		clients: &fakeClientRepo{client: &domain.Client{ID: 7, Phone: "+79001234567"}},
	}
	f.svc = NewService(
		f.appointments, f.clients, fakeTxManager{},
		fixedClock{now: mustTime(t, "2026-02-17 12:00")}, nopLogger{},
	)
	return f
}

func TestCancelAsClient_Success(t *testing.T) {
	f := newFixture(t)

	cancelled, err := f.svc.CancelAsClient(context.Background(), "+79001234567", 10)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, int64(2), cancelled.Version)
	assert.Equal(t, domain.StatusCancelled, f.appointments.byID[10].Status)
}

func TestCancelAsClient_NotOwner(t *testing.T) {
	f := newFixture(t)
	f.clients.client = &domain.Client{ID: 99, Phone: "+79005556677"}

	_, err := f.svc.CancelAsClient(context.Background(), "+79005556677", 10)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, domain.StatusCreated, f.appointments.byID[10].Status)
}

func TestCancelAsClient_StatusForbidsCancel(t *testing.T) {
	f := newFixture(t)

	for _, st := range []domain.AppointmentStatus{domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled} {
		f.appointments.byID[10].Status = st

		_, err := f.svc.CancelAsClient(context.Background(), "+79001234567", 10)
		assert.ErrorIs(t, err, ErrCancelNotAllowed, "status %s", st)
	}
}

func TestCancelAsClient_ConcurrentUpdate(t *testing.T) {
	f := newFixture(t)
	f.appointments.updateStatusErr = appointmentRepo.ErrVersionConflict

	_, err := f.svc.CancelAsClient(context.Background(), "+79001234567", 10)
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
}

func TestSetStatus_ValidTransitions(t *testing.T) {
	f := newFixture(t)

	updated, err := f.svc.SetStatus(context.Background(), 10, domain.StatusPending, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, updated.Status)

	updated, err = f.svc.SetStatus(context.Background(), 10, domain.StatusConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	notes := "пришла вовремя"
	updated, err = f.svc.SetStatus(context.Background(), 10, domain.StatusCompleted, &notes)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	require.NotNil(t, f.appointments.lastNotes)
	assert.Equal(t, notes, *f.appointments.lastNotes)
}

func TestSetStatus_InvalidTransition(t *testing.T) {
	f := newFixture(t)

	// CREATED -> COMPLETED минует подтверждение
	_, err := f.svc.SetStatus(context.Background(), 10, domain.StatusCompleted, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSetStatus_CancelledIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[10].Status = domain.StatusCancelled

	for _, st := range []domain.AppointmentStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted} {
		_, err := f.svc.SetStatus(context.Background(), 10, st, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "transition to %s", st)
	}
}

func TestGetForClient_Ownership(t *testing.T) {
	f := newFixture(t)

	ap, err := f.svc.GetForClient(context.Background(), "+79001234567", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), ap.ID)

	f.clients.client = &domain.Client{ID: 99}
	_, err = f.svc.GetForClient(context.Background(), "+79005556677", 10)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestListForClient_ClientNotFound(t *testing.T) {
	f := newFixture(t)
	f.clients.err = clientRepo.ErrClientNotFound

	_, err := f.svc.ListForClient(context.Background(), "+79000000000")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Delete(context.Background(), 10))
	assert.Equal(t, []int64{10}, f.appointments.deleted)

	err := f.svc.Delete(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
