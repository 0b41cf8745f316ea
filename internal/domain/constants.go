package domain

// Дефолтные бизнес-константы расписания.
// Реальные значения приходят из config.toml ([booking]) - салон
// уже менял шаг слотов, поэтому они не зашиты в логику намертво.
const (
	// DefaultClientSlotStepMinutes шаг, с которым клиенты могут начинать запись
	// (2.5 часа от начала рабочего дня)
	DefaultClientSlotStepMinutes = 150

	// DefaultGranularityMinutes гранулярность брони: длительность услуги
	// округляется вверх до кратных 30 минут
	DefaultGranularityMinutes = 30
)

// Форматы даты и времени
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	TimeFormat     = "15:04"            // HH:MM
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// SchedulePolicy параметры генерации слотов и округления длительности
type SchedulePolicy struct {
	ClientSlotStepMinutes int
	GranularityMinutes    int
}

// DefaultSchedulePolicy возвращает политику с дефолтными значениями
func DefaultSchedulePolicy() SchedulePolicy {
	return SchedulePolicy{
		ClientSlotStepMinutes: DefaultClientSlotStepMinutes,
		GranularityMinutes:    DefaultGranularityMinutes,
	}
}
