package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationPatch перечисляет изменяемые поля бронирования.
// Каждое поле опционально: nil означает "не менять".
// Заменяет динамическое построение update по произвольным полям —
// репозиторий применяет только явно перечисленные сеттеры.
type ReservationPatch struct {
	TableID         *int64
	CustomerName    *string
	CustomerPhone   *string
	PartySize       *int
	ReservationDate *time.Time
	StartTime       *types.TimeString
	DurationHours   *float64
	Status          *ReservationStatus
}

// IsEmpty возвращает true, если ни одно поле не задано
func (p *ReservationPatch) IsEmpty() bool {
	return p.TableID == nil &&
		p.CustomerName == nil &&
		p.CustomerPhone == nil &&
		p.PartySize == nil &&
		p.ReservationDate == nil &&
		p.StartTime == nil &&
		p.DurationHours == nil &&
		p.Status == nil
}

// TouchesSchedule возвращает true, если патч меняет время, дату,
// длительность или столик — в этом случае требуется повторная
// проверка пересечений и рабочих часов
func (p *ReservationPatch) TouchesSchedule() bool {
	return p.TableID != nil ||
		p.ReservationDate != nil ||
		p.StartTime != nil ||
		p.DurationHours != nil
}

// ApplyTo применяет заданные поля патча к бронированию
func (p *ReservationPatch) ApplyTo(r *Reservation) {
	if p.TableID != nil {
		r.TableID = *p.TableID
	}
	if p.CustomerName != nil {
		r.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		r.CustomerPhone = *p.CustomerPhone
	}
	if p.PartySize != nil {
		r.PartySize = *p.PartySize
	}
	if p.ReservationDate != nil {
		r.ReservationDate = *p.ReservationDate
	}
	if p.StartTime != nil {
		r.StartTime = *p.StartTime
	}
	if p.DurationHours != nil {
		r.DurationHours = *p.DurationHours
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}
