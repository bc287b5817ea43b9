package create_reservation

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_reservation: restaurant not found")

	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrTableWrongRestaurant возвращается, когда столик принадлежит другому ресторану
	ErrTableWrongRestaurant = errors.New("create_reservation: table does not belong to the restaurant")

	// ErrCapacityExceeded возвращается, когда вместимость столика меньше размера компании
	ErrCapacityExceeded = errors.New("create_reservation: table capacity is insufficient for party size")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("create_reservation: cannot make reservations for past dates")

	// ErrOutsideOperatingHours возвращается, когда интервал бронирования
	// выходит за рабочие часы ресторана
	ErrOutsideOperatingHours = errors.New("create_reservation: reservation is outside of operating hours")

	// ErrTableNotAvailable возвращается, когда слот пересекается с другим
	// активным бронированием столика
	ErrTableNotAvailable = errors.New("create_reservation: table is already reserved for this time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
