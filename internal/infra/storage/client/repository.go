package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	"github.com/frolovsnails/FSN-BookingService/pkg/psqlbuilder"
	"github.com/frolovsnails/FSN-BookingService/pkg/txmanager"
)

const pqUniqueViolation = "23505"

// Плейсхолдер учетных данных для клиентов, заведенных мастером вручную.
// Настоящий пароль клиент устанавливает при первом входе через auth-слой.
const placeholderCredential = "TEMPORARY_PASSWORD"

var clientColumns = []string{
	"c.id",
	"c.user_id",
	"u.phone",
	"c.first_name",
	"c.last_name",
	"c.birth_date",
	"c.notes",
	"c.created_at",
}

// Repository репозиторий клиентов и связанных учетных записей
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByPhone получает клиента по телефону учетной записи
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectClients().
		Where(squirrel.Eq{"u.phone": phone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan client: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectClients().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return c, nil
}

// CreateWithUser заводит учетную запись и профиль клиента.
// Используется при ручной записи мастером, когда клиента еще нет в системе.
// Вызывается внутри транзакции оркестратора.
func (r *Repository) CreateWithUser(ctx context.Context, phone, firstName, lastName string) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	userQuery, userArgs, err := psqlbuilder.Insert("users").
		Columns("phone", "password_hash", "role", "enabled").
		Values(phone, placeholderCredential, "CLIENT", true).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateWithUser - build user insert: %v", ErrBuildQuery, err)
	}

	var userID int64
	if err := executor.QueryRowContext(ctx, userQuery, userArgs...).Scan(&userID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicatePhone
		}
		return nil, fmt.Errorf("%w: CreateWithUser - execute user insert: %v", ErrExecQuery, err)
	}

	clientQuery, clientArgs, err := psqlbuilder.Insert("clients").
		Columns("user_id", "first_name", "last_name").
		Values(userID, firstName, lastName).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateWithUser - build client insert: %v", ErrBuildQuery, err)
	}

	c := &domain.Client{
		UserID:    userID,
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := executor.QueryRowContext(ctx, clientQuery, clientArgs...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateWithUser - execute client insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

func (r *Repository) selectClients() squirrel.SelectBuilder {
	return psqlbuilder.Select(clientColumns...).
		From("clients c").
		Join("users u ON u.id = c.user_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Phone,
		&c.FirstName,
		&c.LastName,
		&c.BirthDate,
		&c.Notes,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
