package suggest_table

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
)

type fakeRestaurantRepo struct {
	err error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "22:00"}, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

// GetSuitable повторяет контракт репозитория: сортировка по вместимости
func (f *fakeTableRepo) GetSuitable(_ context.Context, _ int64, minCapacity int) ([]*domain.Table, error) {
	var result []*domain.Table
	for _, t := range f.tables {
		if t.Capacity >= minCapacity {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Capacity != result[j].Capacity {
			return result[i].Capacity < result[j].Capacity
		}
		return result[i].ID < result[j].ID
	})
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

func newTestUseCase(tables []*domain.Table, byTable map[int64][]*domain.Reservation) *UseCase {
	return NewUseCase(
		&fakeRestaurantRepo{},
		&fakeTableRepo{tables: tables},
		&fakeReservationRepo{byTable: byTable},
		noopLogger{},
	)
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func testTables() []*domain.Table {
	return []*domain.Table{
		{ID: 10, RestaurantID: 1, TableNumber: "T1", Capacity: 2},
		{ID: 11, RestaurantID: 1, TableNumber: "T2", Capacity: 4},
		{ID: 12, RestaurantID: 1, TableNumber: "T3", Capacity: 6},
	}
}

func TestExecute_PicksSmallestSufficientTable(t *testing.T) {
	uc := newTestUseCase(testTables(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.TableID)
	assert.Equal(t, 2, resp.Capacity)
}

func TestExecute_SkipsBusyTables(t *testing.T) {
	byTable := map[int64][]*domain.Reservation{
		10: {{
			TableID:       10,
			StartTime:     "19:00",
			DurationHours: 2,
			Status:        domain.StatusConfirmed,
		}},
	}

	uc := newTestUseCase(testTables(), byTable)

	// Двухместный занят, выбирается следующий по вместимости
	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     2,
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.TableID)
	assert.Equal(t, 4, resp.Capacity)
}

func TestExecute_SkipsTooSmallTables(t *testing.T) {
	uc := newTestUseCase(testTables(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     5,
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TableID)
}

func TestExecute_EqualCapacityFirstWins(t *testing.T) {
	tables := []*domain.Table{
		{ID: 20, RestaurantID: 1, TableNumber: "A", Capacity: 4},
		{ID: 21, RestaurantID: 1, TableNumber: "B", Capacity: 4},
	}

	uc := newTestUseCase(tables, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     3,
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.TableID)
}

func TestExecute_NoTableAvailable(t *testing.T) {
	byTable := map[int64][]*domain.Reservation{
		10: {{TableID: 10, StartTime: "19:00", DurationHours: 2, Status: domain.StatusConfirmed}},
		11: {{TableID: 11, StartTime: "18:30", DurationHours: 2, Status: domain.StatusConfirmed}},
		12: {{TableID: 12, StartTime: "20:00", DurationHours: 2, Status: domain.StatusConfirmed}},
	}

	uc := newTestUseCase(testTables(), byTable)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     2,
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrNoTableAvailable)
}

func TestExecute_NoSuitableCapacity(t *testing.T) {
	uc := newTestUseCase(testTables(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     10,
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrNoTableAvailable)
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
		StartTime:     "19:00",
		PartySize:     2,
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testTables(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     0,
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		RestaurantID:  1,
		Date:          testDate(),
		StartTime:     "19:00",
		PartySize:     2,
		DurationHours: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
