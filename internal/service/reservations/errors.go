package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrTableWrongRestaurant возвращается, когда столик принадлежит другому ресторану
	ErrTableWrongRestaurant = errors.New("table does not belong to the restaurant")

	// ErrCapacityExceeded возвращается, когда вместимость столика меньше размера компании
	ErrCapacityExceeded = errors.New("table capacity is insufficient for party size")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrCannotUpdate возвращается, когда бронирование не может быть изменено
	ErrCannotUpdate = errors.New("reservation cannot be updated")

	// ErrTableNotAvailable возвращается, когда новый временной слот пересекается
	// с другим бронированием столика
	ErrTableNotAvailable = errors.New("table is already reserved for this time slot")

	// ErrOutsideOperatingHours возвращается, когда слот выходит за рабочие часы ресторана
	ErrOutsideOperatingHours = errors.New("reservation is outside of operating hours")

	// ErrDateInPast возвращается при попытке перенести бронирование на прошедшую дату
	ErrDateInPast = errors.New("cannot make reservations for past dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
