package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func interval(start, end int) TimeInterval {
	return TimeInterval{Start: start, End: end}
}

func TestNewTimeInterval(t *testing.T) {
	iv := NewTimeInterval("19:00", 120)
	assert.Equal(t, 1140, iv.Start)
	assert.Equal(t, 1260, iv.End)

	// Конец не ограничивается сутками
	late := NewTimeInterval("23:00", 120)
	assert.Equal(t, 1500, late.End)
	assert.True(t, late.CrossesMidnight())
}

func TestTimeInterval_Clock(t *testing.T) {
	iv := NewTimeInterval("19:00", 90)
	assert.Equal(t, "19:00", iv.StartClock().String())
	assert.Equal(t, "20:30", iv.EndClock().String())
}

func TestTimeInterval_Overlaps(t *testing.T) {
	existing := interval(1140, 1260) // 19:00 - 21:00

	// Частичное пересечение с обеих сторон
	assert.True(t, existing.Overlaps(interval(1080, 1200))) // 18:00 - 20:00
	assert.True(t, existing.Overlaps(interval(1200, 1320))) // 20:00 - 22:00

	// Вложенность и совпадение
	assert.True(t, existing.Overlaps(interval(1170, 1230)))
	assert.True(t, existing.Overlaps(interval(1140, 1260)))
	assert.True(t, existing.Overlaps(interval(1080, 1320)))

	// Встык не пересекаются: интервалы полуоткрытые
	assert.False(t, existing.Overlaps(interval(1020, 1140))) // 17:00 - 19:00
	assert.False(t, existing.Overlaps(interval(1260, 1380))) // 21:00 - 23:00

	// Полностью в стороне
	assert.False(t, existing.Overlaps(interval(600, 720)))
}

func TestTimeInterval_Overlaps_Symmetry(t *testing.T) {
	a := interval(1140, 1260)
	b := interval(1200, 1320)
	assert.Equal(t, a.Overlaps(b), b.Overlaps(a))

	c := interval(1260, 1380)
	assert.Equal(t, a.Overlaps(c), c.Overlaps(a))
}

func TestTimeInterval_IsEmpty(t *testing.T) {
	assert.True(t, interval(600, 600).IsEmpty())
	assert.True(t, interval(600, 540).IsEmpty())
	assert.False(t, interval(600, 601).IsEmpty())

	// Пустой интервал ни с чем не пересекается
	assert.False(t, interval(600, 600).Overlaps(interval(0, 1440)))
}

func TestHasOverlap_SkipsCancelled(t *testing.T) {
	candidate := interval(1140, 1260) // 19:00 - 21:00

	cancelled := &Reservation{
		StartTime:     "19:00",
		DurationHours: 2,
		Status:        StatusCancelled,
	}
	assert.False(t, HasOverlap(candidate, []*Reservation{cancelled}))

	confirmed := &Reservation{
		StartTime:     "19:00",
		DurationHours: 2,
		Status:        StatusConfirmed,
	}
	assert.True(t, HasOverlap(candidate, []*Reservation{cancelled, confirmed}))
}

func TestHasOverlap_FractionalDuration(t *testing.T) {
	// 1.5 часа = 90 минут, занимает 19:00 - 20:30
	existing := &Reservation{
		StartTime:     "19:00",
		DurationHours: 1.5,
		Status:        StatusConfirmed,
	}

	assert.True(t, HasOverlap(interval(1200, 1320), []*Reservation{existing}))  // 20:00
	assert.False(t, HasOverlap(interval(1230, 1350), []*Reservation{existing})) // 20:30 встык
}

func TestDurationToMinutes(t *testing.T) {
	assert.Equal(t, 120, DurationToMinutes(2.0))
	assert.Equal(t, 90, DurationToMinutes(1.5))
	assert.Equal(t, 30, DurationToMinutes(0.5))
	// Округление до ближайшей минуты
	assert.Equal(t, 100, DurationToMinutes(1.666))
}
