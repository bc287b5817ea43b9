package reservations

import "time"

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Сравнение выполняется на уровне календарных дней, время суток не учитывается.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
