package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestReservationPatch_IsEmpty(t *testing.T) {
	assert.True(t, (&ReservationPatch{}).IsEmpty())

	patch := &ReservationPatch{CustomerName: ptr.Ptr("Анна")}
	assert.False(t, patch.IsEmpty())
}

func TestReservationPatch_TouchesSchedule(t *testing.T) {
	// Контактные данные не требуют повторной проверки доступности
	contact := &ReservationPatch{
		CustomerName:  ptr.Ptr("Анна"),
		CustomerPhone: ptr.Ptr("+7 900 000-00-00"),
		PartySize:     ptr.Ptr(3),
	}
	assert.False(t, contact.TouchesSchedule())

	assert.True(t, (&ReservationPatch{TableID: ptr.Ptr(int64(5))}).TouchesSchedule())
	assert.True(t, (&ReservationPatch{StartTime: ptr.Ptr(types.TimeString("20:00"))}).TouchesSchedule())
	assert.True(t, (&ReservationPatch{DurationHours: ptr.Ptr(1.5)}).TouchesSchedule())

	date := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	assert.True(t, (&ReservationPatch{ReservationDate: &date}).TouchesSchedule())
}

func TestReservationPatch_ApplyTo(t *testing.T) {
	reservation := &Reservation{
		TableID:       10,
		CustomerName:  "Иван",
		PartySize:     2,
		StartTime:     "19:00",
		DurationHours: 2,
		Status:        StatusConfirmed,
	}

	patch := &ReservationPatch{
		TableID:       ptr.Ptr(int64(11)),
		StartTime:     ptr.Ptr(types.TimeString("20:00")),
		DurationHours: ptr.Ptr(1.5),
	}
	patch.ApplyTo(reservation)

	assert.Equal(t, int64(11), reservation.TableID)
	assert.Equal(t, types.TimeString("20:00"), reservation.StartTime)
	assert.Equal(t, 1.5, reservation.DurationHours)

	// Незаданные поля не тронуты
	assert.Equal(t, "Иван", reservation.CustomerName)
	assert.Equal(t, 2, reservation.PartySize)
	assert.Equal(t, StatusConfirmed, reservation.Status)
}
