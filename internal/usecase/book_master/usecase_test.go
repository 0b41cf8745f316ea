package book_master

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	clientRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/client"
	"github.com/frolovsnails/FSN-BookingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
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
	day *domain.WorkingDay
}

func (f *fakeScheduleRepo) GetDayByDate(_ context.Context, _ time.Time) (*domain.WorkingDay, error) {
	return f.day, nil
}

func (f *fakeScheduleRepo) ListActiveBlocksInRange(_ context.Context, _, _ time.Time) ([]*domain.ScheduleBlock, error) {
	return nil, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, nil
}

type fakeClientRepo struct {
	byID        *domain.Client
	byPhone     *domain.Client
	byPhoneLate *domain.Client // виден только после попытки создания (конкурент успел раньше)
	created     *domain.Client
	createErr   error
	createTried bool
	createdInTx bool
}

func (f *fakeClientRepo) GetByID(_ context.Context, _ int64) (*domain.Client, error) {
	if f.byID == nil {
		return nil, clientRepo.ErrClientNotFound
	}
	return f.byID, nil
}

func (f *fakeClientRepo) GetByPhone(_ context.Context, _ string) (*domain.Client, error) {
	if f.byPhone != nil {
		return f.byPhone, nil
	}
	if f.createTried && f.byPhoneLate != nil {
		return f.byPhoneLate, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClientRepo) CreateWithUser(ctx context.Context, phone, firstName, lastName string) (*domain.Client, error) {
	f.createTried = true
	f.createdInTx, _ = ctx.Value(txMarkerKey{}).(bool)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &domain.Client{ID: 99, Phone: phone, FirstName: firstName, LastName: lastName}
	return f.created, nil
}

// txMarkerKey помечает контекст, пришедший из Do, чтобы проверить,
// что зависимые INSERT'ы выполняются внутри транзакции
type txMarkerKey struct{}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txMarkerKey{}, true))
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeConflictCounter struct{ count int }

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

func newUseCase(t *testing.T, appointments *fakeAppointmentRepo, clients *fakeClientRepo) *UseCase {
	day := &domain.WorkingDay{
		Date:      mustTime(t, "2026-02-18 00:00"),
		WorkStart: mustTime(t, "2026-02-18 09:00"),
		WorkEnd:   mustTime(t, "2026-02-18 18:00"),
		IsOpen:    true,
	}
	return NewUseCase(
		appointments,
		&fakeScheduleRepo{day: day},
		&fakeCatalogRepo{service: &domain.Service{ID: 5, Name: "Педикюр", DurationMinutes: 60, IsActive: true}},
		clients,
		fakeTxManager{},
		&fakeConflictCounter{},
		domain.DefaultSchedulePolicy(),
		nopLogger{},
	)
}

func TestExecute_OffGridAllowedForMaster(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{byID: &domain.Client{ID: 7, FirstName: "Анна"}}
	uc := newUseCase(t, appointments, clients)

	// 10:15 вне клиентской сетки, но мастеру это разрешено
	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:  ptr.Ptr(int64(7)),
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 10:15"),
	})
	require.NoError(t, err)

	assert.Equal(t, mustTime(t, "2026-02-18 11:15"), resp.EndTime)
	// Ручная запись, как и клиентская, начинает жизненный цикл с CREATED
	assert.Equal(t, string(domain.StatusCreated), resp.Status)
	require.NotNil(t, appointments.created)
	assert.True(t, appointments.created.IsManual)
}

func TestExecute_CreatesClientByPhone(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{}
	uc := newUseCase(t, appointments, clients)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientPhone:     "+79005554433",
		ClientFirstName: "Мария",
		ClientLastName:  "Иванова",
		ServiceID:       5,
		StartTime:       mustTime(t, "2026-02-18 12:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, clients.created)
	assert.Equal(t, "+79005554433", clients.created.Phone)
	assert.Equal(t, int64(99), resp.ClientID)
	// users + clients пишутся атомарно
	assert.True(t, clients.createdInTx)
}

func TestExecute_DuplicatePhoneRaceReusesWinner(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{
		byPhoneLate: &domain.Client{ID: 7, Phone: "+79005554433", FirstName: "Анна"},
		createErr:   clientRepo.ErrDuplicatePhone,
	}
	uc := newUseCase(t, appointments, clients)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientPhone:     "+79005554433",
		ClientFirstName: "Анна",
		ServiceID:       5,
		StartTime:       mustTime(t, "2026-02-18 12:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ClientID)
}

func TestExecute_DuplicatePhoneWithoutWinnerMapped(t *testing.T) {
	// Дубликат телефона, но профиля клиента нет (осиротевший пользователь):
	// наружу уходит ошибка use case, а не sentinel репозитория
	clients := &fakeClientRepo{createErr: clientRepo.ErrDuplicatePhone}
	uc := newUseCase(t, &fakeAppointmentRepo{}, clients)

	_, err := uc.Execute(context.Background(), &Request{
		ClientPhone:     "+79005554433",
		ClientFirstName: "Анна",
		ServiceID:       5,
		StartTime:       mustTime(t, "2026-02-18 12:00"),
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NotErrorIs(t, err, clientRepo.ErrClientNotFound)
}

func TestExecute_ExistingClientReusedByPhone(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{byPhone: &domain.Client{ID: 7, Phone: "+79005554433", FirstName: "Анна"}}
	uc := newUseCase(t, appointments, clients)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientPhone:     "+79005554433",
		ClientFirstName: "Анна",
		ServiceID:       5,
		StartTime:       mustTime(t, "2026-02-18 12:00"),
	})
	require.NoError(t, err)

	assert.Nil(t, clients.created)
	assert.Equal(t, int64(7), resp.ClientID)
}

func TestExecute_InvalidClientSpec(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, &fakeClientRepo{})

	t.Run("no client at all", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			ServiceID: 5,
			StartTime: mustTime(t, "2026-02-18 12:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidClientSpec)
	})

	t.Run("phone without name", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			ClientPhone: "+79005554433",
			ServiceID:   5,
			StartTime:   mustTime(t, "2026-02-18 12:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidClientSpec)
	})
}

func TestExecute_OccupiedSlotRejected(t *testing.T) {
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			StartTime: mustTime(t, "2026-02-18 12:30"),
			EndTime:   mustTime(t, "2026-02-18 13:30"),
			Status:    domain.StatusCreated,
		},
	}}
	clients := &fakeClientRepo{byID: &domain.Client{ID: 7}}
	uc := newUseCase(t, appointments, clients)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  ptr.Ptr(int64(7)),
		ServiceID: 5,
		StartTime: mustTime(t, "2026-02-18 12:00"),
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}
