package domain

import (
	"sort"
	"time"
)

// Чистая логика расписания: проверка доступности интервала,
// сетка клиентских слотов, поиск свободных промежутков.
// Функции не ходят в хранилище - наборы записей и блокировок
// за нужное окно передает вызывающий.

// RoundDurationMinutes округляет длительность услуги вверх до кратной
// granularity. Бронь всегда занимает целое число "клеток" расписания:
// услуга на 100 минут занимает 120.
func RoundDurationMinutes(durationMinutes, granularityMinutes int) int {
	if granularityMinutes <= 0 {
		return durationMinutes
	}
	slots := (durationMinutes + granularityMinutes - 1) / granularityMinutes
	return slots * granularityMinutes
}

// AppointmentInterval вычисляет интервал записи: от startTime на
// округленную длительность услуги
func AppointmentInterval(startTime time.Time, serviceDurationMinutes, granularityMinutes int) TimeInterval {
	rounded := RoundDurationMinutes(serviceDurationMinutes, granularityMinutes)
	return TimeInterval{
		Start: startTime,
		End:   startTime.Add(time.Duration(rounded) * time.Minute),
	}
}

// IsOnClientSlotBoundary проверяет, что время начала лежит на сетке
// клиентских слотов: целое число шагов от начала рабочего дня
func IsOnClientSlotBoundary(startTime, workStart time.Time, stepMinutes int) bool {
	if stepMinutes <= 0 {
		return true
	}
	offset := startTime.Sub(workStart)
	if offset < 0 {
		return false
	}
	return offset%(time.Duration(stepMinutes)*time.Minute) == 0
}

// IsBookable решает, свободен ли интервал-кандидат.
// Интервал недоступен, если пересекается с активной блокировкой
// или с любой неотмененной записью.
func IsBookable(candidate TimeInterval, appointments []*Appointment, blocks []*ScheduleBlock) bool {
	for _, b := range blocks {
		if !b.IsActive {
			continue
		}
		if candidate.Overlaps(b.Interval()) {
			return false
		}
	}

	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		if candidate.Overlaps(a.Interval()) {
			return false
		}
	}

	return true
}

// FindFreeRanges находит свободные промежутки внутри рабочего интервала.
// Занятые события (неотмененные записи + активные блокировки) сортируются
// по началу, затем курсор идет от начала дня: промежуток до очередного
// события выдается, если его длительность >= minDurationMinutes.
// Курсор двигается только вперед (max(cursor, event.End)), поэтому
// пересекающиеся события не требуют предварительного слияния.
func FindFreeRanges(work TimeInterval, appointments []*Appointment, blocks []*ScheduleBlock, minDurationMinutes int) []TimeInterval {
	events := make([]TimeInterval, 0, len(appointments)+len(blocks))
	for _, a := range appointments {
		if a.IsActive() {
			events = append(events, a.Interval())
		}
	}
	for _, b := range blocks {
		if b.IsActive {
			events = append(events, b.Interval())
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	minDuration := time.Duration(minDurationMinutes) * time.Minute
	ranges := make([]TimeInterval, 0)
	cursor := work.Start

	for _, ev := range events {
		if cursor.Before(ev.Start) {
			gapEnd := ev.Start
			if gapEnd.After(work.End) {
				gapEnd = work.End
			}
			if gapEnd.Sub(cursor) >= minDuration {
				ranges = append(ranges, TimeInterval{Start: cursor, End: gapEnd})
			}
		}
		if cursor.Before(ev.End) {
			cursor = ev.End
		}
	}

	// Последний промежуток до конца рабочего дня
	if cursor.Before(work.End) && work.End.Sub(cursor) >= minDuration {
		ranges = append(ranges, TimeInterval{Start: cursor, End: work.End})
	}

	return ranges
}
