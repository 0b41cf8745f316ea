package domain

import "time"

// WorkingDay рабочий день мастера: конкретная дата с границами рабочего времени.
// Дата уникальна. Время хранится с точностью до минуты - секунды
// отбрасываются при записи.
type WorkingDay struct {
	ID        int64
	Date      time.Time // только дата, время обнулено
	WorkStart time.Time // время начала работы в этот день
	WorkEnd   time.Time // время окончания работы
	IsOpen    bool      // день может существовать, но быть явно закрыт (выходной)
	Notes     *string
}

// WorkInterval возвращает рабочий интервал дня
func (d *WorkingDay) WorkInterval() TimeInterval {
	return TimeInterval{Start: d.WorkStart, End: d.WorkEnd}
}

// TruncateToMinute отбрасывает секунды и наносекунды
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// DateOnly обнуляет компонент времени, оставляя дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
