package get_available_slots

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// generateSlots генерирует слоты начала бронирования с шагом 30 минут.
//
// Кандидаты идут от времени открытия до последнего старта, при котором
// бронирование целиком помещается до закрытия. Для каждого кандидата
// собираются столики без пересечений с активными бронированиями.
// Слоты без единого свободного столика в результат не попадают.
//
// Рестораны, работающие через полночь, не поддерживаются: для них
// возвращается пустой список.
func generateSlots(
	rest *domain.Restaurant,
	tables []*domain.Table,
	reservationsByTable map[int64][]*domain.Reservation,
	durationMinutes int,
) []domain.AvailableSlot {
	if rest.IsClosedAllDay() || rest.IsOvernight() {
		return nil
	}

	open := rest.OpeningTime.Minutes()
	close := rest.ClosingTime.Minutes()

	var slots []domain.AvailableSlot

	for start := open; start+durationMinutes <= close; start += domain.DefaultSlotStepMinutes {
		candidate := domain.TimeInterval{Start: start, End: start + durationMinutes}

		slot := domain.AvailableSlot{StartTime: candidate.StartClock()}
		for _, tbl := range tables {
			if !domain.HasOverlap(candidate, reservationsByTable[tbl.ID]) {
				slot.AvailableTableIDs = append(slot.AvailableTableIDs, tbl.ID)
			}
		}

		if !slot.HasTables() {
			continue
		}

		slots = append(slots, slot)
	}

	return slots
}
