package appointment

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrTimeConflict возвращается, когда интервал записи пересекся с другой
	// активной записью на уровне constraint'а БД. Это штатная ситуация при
	// гонке двух одновременных запросов за один слот.
	ErrTimeConflict = errors.New("appointment.repository: time slot already taken")

	// ErrVersionConflict возвращается, когда оптимистичная блокировка
	// обнаружила конкурентное изменение записи (version не совпал)
	ErrVersionConflict = errors.New("appointment.repository: appointment was modified concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// Имя exclusion constraint'а, запрещающего пересечение активных записей.
// Совпадает с migrations/001_init.sql.
const overlapConstraint = "appointments_no_overlap"

const (
	pqExclusionViolation   = "23P01"
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
)

// isOverlapViolation отличает нарушение именно нашего constraint'а
// пересечений от любых других integrity-ошибок: чужие нарушения
// не должны превращаться в "слот занят".
func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != pqExclusionViolation && string(pqErr.Code) != pqUniqueViolation {
		return false
	}
	return pqErr.Constraint == overlapConstraint
}

// isWriteConflict объединяет два проявления проигранной гонки за слот:
// нарушение constraint'а пересечений и срыв сериализуемой транзакции,
// поднятый прямо на statement'е (до commit'а). Оба мапятся в
// ErrTimeConflict до обертки в ErrExecQuery, иначе *pq.Error потеряется
// из цепочки и наверху гонка будет неотличима от внутренней ошибки.
func isWriteConflict(err error) bool {
	return isOverlapViolation(err) || IsSerializationFailure(err)
}

// IsSerializationFailure проверяет, что ошибка - срыв сериализуемой
// транзакции (две транзакции не смогли выполниться последовательно).
// Вызывающий трактует это как проигрыш гонки за слот.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pqSerializationFailure
}
