package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func restaurant(open, close string) *Restaurant {
	return &Restaurant{
		OpeningTime: types.TimeString(open),
		ClosingTime: types.TimeString(close),
	}
}

func TestRestaurant_IsOvernight(t *testing.T) {
	assert.False(t, restaurant("10:00", "22:00").IsOvernight())
	assert.True(t, restaurant("22:00", "02:00").IsOvernight())
	assert.False(t, restaurant("12:00", "12:00").IsOvernight())
}

func TestRestaurant_IsClosedAllDay(t *testing.T) {
	assert.True(t, restaurant("12:00", "12:00").IsClosedAllDay())
	assert.False(t, restaurant("10:00", "22:00").IsClosedAllDay())
}

func TestRestaurant_ContainsTime(t *testing.T) {
	day := restaurant("10:00", "22:00")
	assert.True(t, day.ContainsTime(600))   // 10:00 включительно
	assert.True(t, day.ContainsTime(1320))  // 22:00 включительно
	assert.True(t, day.ContainsTime(900))   // 15:00
	assert.False(t, day.ContainsTime(599))  // 09:59
	assert.False(t, day.ContainsTime(1321)) // 22:01

	night := restaurant("22:00", "02:00")
	assert.True(t, night.ContainsTime(1380)) // 23:00
	assert.True(t, night.ContainsTime(60))   // 01:00
	assert.True(t, night.ContainsTime(1320)) // 22:00
	assert.True(t, night.ContainsTime(120))  // 02:00
	assert.False(t, night.ContainsTime(720)) // 12:00
}

func TestRestaurant_ContainsInterval(t *testing.T) {
	day := restaurant("10:00", "22:00")

	assert.True(t, day.ContainsInterval(NewTimeInterval("10:00", 120)))
	assert.True(t, day.ContainsInterval(NewTimeInterval("20:00", 120))) // заканчивается ровно в закрытие
	assert.False(t, day.ContainsInterval(NewTimeInterval("21:00", 120)))
	assert.False(t, day.ContainsInterval(NewTimeInterval("09:00", 120)))

	// Переход через полночь допустим только для ночных заведений
	assert.False(t, day.ContainsInterval(NewTimeInterval("23:00", 120)))
}

func TestRestaurant_ContainsInterval_Overnight(t *testing.T) {
	night := restaurant("22:00", "02:00")

	// 23:00 + 2 часа = 01:00, целиком внутри ночного окна
	assert.True(t, night.ContainsInterval(NewTimeInterval("23:00", 120)))

	// 22:00 + 4 часа = 02:00, ровно до закрытия
	assert.True(t, night.ContainsInterval(NewTimeInterval("22:00", 240)))

	// 01:00 + 2 часа = 03:00, выходит за закрытие
	assert.False(t, night.ContainsInterval(NewTimeInterval("01:00", 120)))

	// Дневное время вне окна
	assert.False(t, night.ContainsInterval(NewTimeInterval("12:00", 60)))
}

func TestRestaurant_ContainsInterval_ClosedAllDay(t *testing.T) {
	closed := restaurant("12:00", "12:00")

	assert.False(t, closed.ContainsInterval(NewTimeInterval("12:00", 0)))
	assert.False(t, closed.ContainsInterval(NewTimeInterval("12:00", 60)))
	assert.False(t, closed.ContainsInterval(NewTimeInterval("00:00", 30)))
}
