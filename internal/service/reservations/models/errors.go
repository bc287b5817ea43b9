package models

import "errors"

// ErrInvalidStatus возвращается при некорректном статусе бронирования
var ErrInvalidStatus = errors.New("invalid reservation status")
