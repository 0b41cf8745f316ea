package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(DateTimeFormat, s)
	require.NoError(t, err)
	return v
}

func TestRoundDurationMinutes(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{30, 30},
		{60, 60},
		{90, 90},   // уже кратно 30 - не меняется
		{100, 120}, // округление вверх
		{101, 120},
		{121, 150},
		{1, 30},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, RoundDurationMinutes(tc.duration, 30), "duration %d", tc.duration)
	}
}

func TestAppointmentInterval(t *testing.T) {
	start := mustTime(t, "2026-02-18 10:00")

	iv := AppointmentInterval(start, 100, 30)
	assert.Equal(t, start, iv.Start)
	assert.Equal(t, mustTime(t, "2026-02-18 12:00"), iv.End)
}

func TestIsOnClientSlotBoundary(t *testing.T) {
	workStart := mustTime(t, "2026-02-18 09:00")

	tests := []struct {
		start string
		want  bool
	}{
		{"2026-02-18 09:00", true},
		{"2026-02-18 11:30", true}, // 09:00 + 150 мин
		{"2026-02-18 14:00", true}, // 09:00 + 300 мин
		{"2026-02-18 16:30", true},
		{"2026-02-18 10:00", false}, // мимо сетки
		{"2026-02-18 08:00", false}, // до начала рабочего дня
	}

	for _, tc := range tests {
		got := IsOnClientSlotBoundary(mustTime(t, tc.start), workStart, 150)
		assert.Equal(t, tc.want, got, "start %s", tc.start)
	}
}

func TestIsBookable(t *testing.T) {
	candidate := mustInterval(t, "2026-02-18 12:00", "2026-02-18 13:00")

	t.Run("empty day", func(t *testing.T) {
		assert.True(t, IsBookable(candidate, nil, nil))
	})

	t.Run("overlapping appointment", func(t *testing.T) {
		appointments := []*Appointment{{
			StartTime: mustTime(t, "2026-02-18 12:30"),
			EndTime:   mustTime(t, "2026-02-18 14:00"),
			Status:    StatusConfirmed,
		}}
		assert.False(t, IsBookable(candidate, appointments, nil))
	})

	t.Run("cancelled appointment does not block", func(t *testing.T) {
		appointments := []*Appointment{{
			StartTime: mustTime(t, "2026-02-18 12:30"),
			EndTime:   mustTime(t, "2026-02-18 14:00"),
			Status:    StatusCancelled,
		}}
		assert.True(t, IsBookable(candidate, appointments, nil))
	})

	t.Run("adjacent appointment does not block", func(t *testing.T) {
		appointments := []*Appointment{{
			StartTime: mustTime(t, "2026-02-18 13:00"),
			EndTime:   mustTime(t, "2026-02-18 14:00"),
			Status:    StatusCreated,
		}}
		assert.True(t, IsBookable(candidate, appointments, nil))
	})

	t.Run("active block always wins", func(t *testing.T) {
		// Кандидат целиком внутри активной блокировки - недоступен
		// независимо от состояния записей
		blocks := []*ScheduleBlock{{
			StartTime: mustTime(t, "2026-02-18 11:00"),
			EndTime:   mustTime(t, "2026-02-18 14:00"),
			Reason:    BlockVacation,
			IsActive:  true,
		}}
		assert.False(t, IsBookable(candidate, nil, blocks))
	})

	t.Run("inactive block does not block", func(t *testing.T) {
		blocks := []*ScheduleBlock{{
			StartTime: mustTime(t, "2026-02-18 11:00"),
			EndTime:   mustTime(t, "2026-02-18 14:00"),
			Reason:    BlockVacation,
			IsActive:  false,
		}}
		assert.True(t, IsBookable(candidate, nil, blocks))
	})
}

func TestFindFreeRanges(t *testing.T) {
	work := mustInterval(t, "2026-02-18 10:00", "2026-02-18 19:00")

	t.Run("empty day is one big range", func(t *testing.T) {
		ranges := FindFreeRanges(work, nil, nil, 30)
		require.Len(t, ranges, 1)
		assert.Equal(t, work, ranges[0])
	})

	t.Run("block splits the day", func(t *testing.T) {
		blocks := []*ScheduleBlock{{
			StartTime: mustTime(t, "2026-02-18 14:00"),
			EndTime:   mustTime(t, "2026-02-18 16:00"),
			IsActive:  true,
		}}

		ranges := FindFreeRanges(work, nil, blocks, 30)
		require.Len(t, ranges, 2)
		assert.Equal(t, mustInterval(t, "2026-02-18 10:00", "2026-02-18 14:00"), ranges[0])
		assert.Equal(t, mustInterval(t, "2026-02-18 16:00", "2026-02-18 19:00"), ranges[1])
	})

	t.Run("short gap filtered by min duration", func(t *testing.T) {
		appointments := []*Appointment{
			{
				StartTime: mustTime(t, "2026-02-18 10:30"),
				EndTime:   mustTime(t, "2026-02-18 12:00"),
				Status:    StatusConfirmed,
			},
		}

		// Промежуток 10:00-10:30 короче 60 минут и отбрасывается
		ranges := FindFreeRanges(work, appointments, nil, 60)
		require.Len(t, ranges, 1)
		assert.Equal(t, mustInterval(t, "2026-02-18 12:00", "2026-02-18 19:00"), ranges[0])
	})

	t.Run("overlapping events need no merging", func(t *testing.T) {
		// Запись и блокировка пересекаются: курсор двигается только вперед,
		// поэтому результат такой же, как после слияния
		appointments := []*Appointment{{
			StartTime: mustTime(t, "2026-02-18 11:00"),
			EndTime:   mustTime(t, "2026-02-18 13:00"),
			Status:    StatusCreated,
		}}
		blocks := []*ScheduleBlock{{
			StartTime: mustTime(t, "2026-02-18 12:00"),
			EndTime:   mustTime(t, "2026-02-18 15:00"),
			IsActive:  true,
		}}

		ranges := FindFreeRanges(work, appointments, blocks, 30)
		require.Len(t, ranges, 2)
		assert.Equal(t, mustInterval(t, "2026-02-18 10:00", "2026-02-18 11:00"), ranges[0])
		assert.Equal(t, mustInterval(t, "2026-02-18 15:00", "2026-02-18 19:00"), ranges[1])
	})

	t.Run("cancelled appointments are free time", func(t *testing.T) {
		appointments := []*Appointment{{
			StartTime: mustTime(t, "2026-02-18 11:00"),
			EndTime:   mustTime(t, "2026-02-18 13:00"),
			Status:    StatusCancelled,
		}}

		ranges := FindFreeRanges(work, appointments, nil, 30)
		require.Len(t, ranges, 1)
		assert.Equal(t, work, ranges[0])
	})
}
