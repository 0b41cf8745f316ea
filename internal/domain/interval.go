package domain

import "time"

// TimeInterval полуоткрытый временной интервал [Start, End).
// Благодаря полуоткрытости запись, заканчивающаяся ровно в момент
// начала другой, пересечением не считается.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал, проверяя Start < End
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps проверяет пересечение двух интервалов.
// Интервалы пересекаются, только если a.Start < b.End И b.Start < a.End
// (строгие неравенства: граничащие интервалы не пересекаются).
func (a TimeInterval) Overlaps(b TimeInterval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Contains проверяет, что inner целиком лежит внутри a
func (a TimeInterval) Contains(inner TimeInterval) bool {
	return !a.Start.After(inner.Start) && !inner.End.After(a.End)
}

// Duration возвращает длительность интервала
func (a TimeInterval) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// Minutes возвращает длительность интервала в минутах
func (a TimeInterval) Minutes() int {
	return int(a.End.Sub(a.Start) / time.Minute)
}
