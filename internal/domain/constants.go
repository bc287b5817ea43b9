package domain

// Default configuration values
const (
	DefaultSlotStepMinutes  = 30
	DefaultDurationHours    = 2.0
	DefaultStatusOnCreation = StatusConfirmed
)

// Business validation constants
const (
	MinPartySize             = 1
	MinDurationHours         = 0.0 // строго больше нуля
	MaxDurationHours         = 8.0
	MinTableCapacity         = 1
	MaxCustomerNameLength    = 100
	MaxCustomerPhoneLength   = 20
	MinCustomerPhoneDigits   = 10
	MaxTableNumberLength     = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// InactiveStatuses список статусов, которые не учитываются
// при проверке пересечений бронирований
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
