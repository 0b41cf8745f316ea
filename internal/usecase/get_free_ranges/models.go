package get_free_ranges

import "time"

// Request модель запроса свободных промежутков на дату.
// MinDurationMinutes отсекает промежутки короче указанной длительности;
// ноль означает "показать все".
type Request struct {
	Date               time.Time
	MinDurationMinutes int
}

// FreeRange один непрерывный свободный промежуток
type FreeRange struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}

// Response модель ответа со свободными промежутками
type Response struct {
	Date       time.Time
	WorkStart  time.Time
	WorkEnd    time.Time
	FreeRanges []FreeRange
}
