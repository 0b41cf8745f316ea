package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()
	s, err := time.Parse(DateTimeFormat, start)
	require.NoError(t, err)
	e, err := time.Parse(DateTimeFormat, end)
	require.NoError(t, err)
	iv, err := NewTimeInterval(s, e)
	require.NoError(t, err)
	return iv
}

func TestNewTimeInterval(t *testing.T) {
	now := time.Now()

	t.Run("start before end", func(t *testing.T) {
		iv, err := NewTimeInterval(now, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, iv.Duration())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := NewTimeInterval(now, now)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := NewTimeInterval(now.Add(time.Hour), now)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{
			name: "partial overlap",
			a:    [2]string{"2026-02-18 10:00", "2026-02-18 12:00"},
			b:    [2]string{"2026-02-18 11:00", "2026-02-18 13:00"},
			want: true,
		},
		{
			name: "containment",
			a:    [2]string{"2026-02-18 10:00", "2026-02-18 14:00"},
			b:    [2]string{"2026-02-18 11:00", "2026-02-18 12:00"},
			want: true,
		},
		{
			name: "identical",
			a:    [2]string{"2026-02-18 10:00", "2026-02-18 11:00"},
			b:    [2]string{"2026-02-18 10:00", "2026-02-18 11:00"},
			want: true,
		},
		{
			name: "adjacent do not overlap",
			a:    [2]string{"2026-02-18 10:00", "2026-02-18 11:00"},
			b:    [2]string{"2026-02-18 11:00", "2026-02-18 12:00"},
			want: false,
		},
		{
			name: "disjoint",
			a:    [2]string{"2026-02-18 10:00", "2026-02-18 11:00"},
			b:    [2]string{"2026-02-18 15:00", "2026-02-18 16:00"},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustInterval(t, tc.a[0], tc.a[1])
			b := mustInterval(t, tc.b[0], tc.b[1])

			assert.Equal(t, tc.want, a.Overlaps(b))
			// Пересечение симметрично
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
		})
	}
}

func TestContains(t *testing.T) {
	outer := mustInterval(t, "2026-02-18 10:00", "2026-02-18 19:00")

	assert.True(t, outer.Contains(mustInterval(t, "2026-02-18 10:00", "2026-02-18 19:00")))
	assert.True(t, outer.Contains(mustInterval(t, "2026-02-18 12:00", "2026-02-18 13:00")))
	assert.False(t, outer.Contains(mustInterval(t, "2026-02-18 09:00", "2026-02-18 11:00")))
	assert.False(t, outer.Contains(mustInterval(t, "2026-02-18 18:00", "2026-02-18 20:00")))
}

func TestMinutes(t *testing.T) {
	iv := mustInterval(t, "2026-02-18 10:00", "2026-02-18 11:30")
	assert.Equal(t, 90, iv.Minutes())
}
