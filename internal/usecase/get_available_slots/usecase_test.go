package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	err        error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, f.err
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetSuitable(_ context.Context, _ int64, minCapacity int) ([]*domain.Table, error) {
	var result []*domain.Table
	for _, t := range f.tables {
		if t.Capacity >= minCapacity {
			result = append(result, t)
		}
	}
	return result, nil
}

type fakeReservationRepo struct {
	byTable map[int64][]*domain.Reservation
}

func (f *fakeReservationRepo) GetByTableAndDate(_ context.Context, tableID int64, _ time.Time) ([]*domain.Reservation, error) {
	return f.byTable[tableID], nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(rest *domain.Restaurant, tables []*domain.Table, byTable map[int64][]*domain.Reservation) *UseCase {
	return NewUseCase(
		&fakeRestaurantRepo{restaurant: rest},
		&fakeTableRepo{tables: tables},
		&fakeReservationRepo{byTable: byTable},
		noopLogger{},
	)
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func slotTimes(slots []domain.AvailableSlot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.String()
	}
	return result
}

func findSlot(slots []domain.AvailableSlot, start string) *domain.AvailableSlot {
	for i := range slots {
		if slots[i].StartTime == types.TimeString(start) {
			return &slots[i]
		}
	}
	return nil
}

func TestExecute_FullyFreeDay(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "22:00"}
	tables := []*domain.Table{{ID: 10, RestaurantID: 1, Capacity: 4}}

	uc := newTestUseCase(rest, tables, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)

	// Кандидаты от 10:00 до 20:00 включительно с шагом 30 минут
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "20:00", resp.Slots[len(resp.Slots)-1].StartTime.String())
	assert.Len(t, resp.Slots, 21)
}

func TestExecute_ExcludesConflictingSlots(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "22:00"}
	tables := []*domain.Table{{ID: 10, RestaurantID: 1, Capacity: 4}}
	byTable := map[int64][]*domain.Reservation{
		10: {{
			TableID:       10,
			StartTime:     "19:00",
			DurationHours: 2,
			Status:        domain.StatusConfirmed,
		}},
	}

	uc := newTestUseCase(rest, tables, byTable)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)

	times := slotTimes(resp.Slots)

	// Бронирование 19:00 - 21:00 блокирует кандидатов, которые его задевают
	assert.NotContains(t, times, "17:30")
	assert.NotContains(t, times, "18:00")
	assert.NotContains(t, times, "18:30")
	assert.NotContains(t, times, "19:00")
	assert.NotContains(t, times, "19:30")
	assert.NotContains(t, times, "20:00")

	// Встык до начала бронирования кандидат остается: 17:00 + 2ч = 19:00
	assert.Contains(t, times, "17:00")
	assert.Contains(t, times, "10:00")
}

func TestExecute_SlotListsOnlyFreeTables(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "22:00"}
	tables := []*domain.Table{
		{ID: 10, RestaurantID: 1, Capacity: 2},
		{ID: 11, RestaurantID: 1, Capacity: 4},
	}
	byTable := map[int64][]*domain.Reservation{
		10: {{
			TableID:       10,
			StartTime:     "12:00",
			DurationHours: 2,
			Status:        domain.StatusConfirmed,
		}},
	}

	uc := newTestUseCase(rest, tables, byTable)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)

	// В занятое для столика 10 время остается только столик 11
	noon := findSlot(resp.Slots, "12:00")
	require.NotNil(t, noon)
	assert.Equal(t, []int64{11}, noon.AvailableTableIDs)

	// В свободное время доступны оба
	morning := findSlot(resp.Slots, "10:00")
	require.NotNil(t, morning)
	assert.Equal(t, []int64{10, 11}, morning.AvailableTableIDs)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "22:00"}
	tables := []*domain.Table{{ID: 10, RestaurantID: 1, Capacity: 4}}
	byTable := map[int64][]*domain.Reservation{
		10: {{
			TableID:       10,
			StartTime:     "19:00",
			DurationHours: 2,
			Status:        domain.StatusCancelled,
		}},
	}

	uc := newTestUseCase(rest, tables, byTable)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)

	assert.Contains(t, slotTimes(resp.Slots), "19:00")
}

func TestExecute_DefaultDuration(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "12:00"}
	tables := []*domain.Table{{ID: 10, RestaurantID: 1, Capacity: 4}}

	uc := newTestUseCase(rest, tables, nil)

	// DurationHours не задан, применяются 2 часа: единственный кандидат 10:00
	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate(),
		PartySize:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00"}, slotTimes(resp.Slots))
}

func TestExecute_ClosedAllDay(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "12:00", ClosingTime: "12:00"}
	tables := []*domain.Table{{ID: 10, RestaurantID: 1, Capacity: 4}}

	uc := newTestUseCase(rest, tables, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OvernightRestaurantHasNoSlots(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "22:00", ClosingTime: "02:00"}
	tables := []*domain.Table{{ID: 10, RestaurantID: 1, Capacity: 4}}

	uc := newTestUseCase(rest, tables, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoSuitableTables(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "22:00"}
	tables := []*domain.Table{{ID: 10, RestaurantID: 1, Capacity: 2}}

	uc := newTestUseCase(rest, tables, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		PartySize:     6,
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeRestaurantRepo{err: restaurant.ErrRestaurantNotFound},
		&fakeTableRepo{},
		&fakeReservationRepo{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  99,
		Date:          testDate(),
		PartySize:     2,
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&domain.Restaurant{}, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 0,
		Date:         testDate(),
		PartySize:    2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		PartySize:    2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate(),
		PartySize:    0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
