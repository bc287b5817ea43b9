package suggest_table

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("suggest_table: restaurant not found")

	// ErrNoTableAvailable возвращается, когда нет свободного столика
	// подходящей вместимости на запрошенный интервал
	ErrNoTableAvailable = errors.New("suggest_table: no suitable table available for this time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_table: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("suggest_table: internal error")
)
