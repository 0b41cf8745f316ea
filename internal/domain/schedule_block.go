package domain

import (
	"fmt"
	"time"
)

// BlockReason причина блокировки времени
type BlockReason string

const (
	BlockVacation  BlockReason = "VACATION"
	BlockPersonal  BlockReason = "PERSONAL"
	BlockSickLeave BlockReason = "SICK_LEAVE"
	BlockOther     BlockReason = "OTHER"
)

// ParseBlockReason конвертирует строку в BlockReason
func ParseBlockReason(s string) (BlockReason, error) {
	switch BlockReason(s) {
	case BlockVacation, BlockPersonal, BlockSickLeave, BlockOther:
		return BlockReason(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBlockReason, s)
}

// ScheduleBlock заблокированный мастером интервал времени, не связанный
// с записями: отпуск, личные дела, больничный. Пока блокировка активна,
// пересекающееся с ней время недоступно для записи.
type ScheduleBlock struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Reason    BlockReason
	Notes     *string
	IsActive  bool
}

// Interval возвращает интервал блокировки
func (b *ScheduleBlock) Interval() TimeInterval {
	return TimeInterval{Start: b.StartTime, End: b.EndTime}
}
