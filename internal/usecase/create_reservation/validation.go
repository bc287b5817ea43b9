package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurant_id must be positive", ErrInvalidInput)
	}

	if req.TableID <= 0 {
		return fmt.Errorf("%w: table_id must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer_name is too long (max %d characters)", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if err := validatePhone(req.CustomerPhone); err != nil {
		return err
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: party_size must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time must be in HH:MM format", ErrInvalidInput)
	}

	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration_hours must be positive", ErrInvalidInput)
	}
	if req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration_hours must not exceed %.0f", ErrInvalidInput, domain.MaxDurationHours)
	}

	return nil
}

// validatePhone проверяет телефон гостя: длина и минимальное число цифр
func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customer_phone is too long (max %d characters)", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < domain.MinCustomerPhoneDigits {
		return fmt.Errorf("%w: customer_phone must contain at least %d digits", ErrInvalidInput, domain.MinCustomerPhoneDigits)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Сравнение выполняется на уровне календарных дней.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
