package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
)

type fakeReservationRepo struct {
	byRestaurant []*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) GetByTableAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) GetByRestaurantAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Reservation, error) {
	return f.byRestaurant, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, _ int64, _ domain.ReservationPatch) error {
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64) error {
	return nil
}

type fakeTableRepo struct{}

func (fakeTableRepo) GetByID(_ context.Context, _ int64) (*domain.Table, error) {
	return nil, nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	err        error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, f.err
}

type fakeTxManager struct {
	readOnlyCalls     int
	serializableCalls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializableCalls++
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readOnlyCalls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGetByRestaurantAndDate_RunsInReadOnlyTransaction(t *testing.T) {
	reservations := []*domain.Reservation{
		{ID: 1, RestaurantID: 5, TableID: 10, StartTime: "19:00", DurationHours: 2, Status: domain.StatusConfirmed},
		{ID: 2, RestaurantID: 5, TableID: 11, StartTime: "20:00", DurationHours: 2, Status: domain.StatusCancelled},
	}
	txManager := &fakeTxManager{}

	svc := NewService(
		&fakeReservationRepo{byRestaurant: reservations},
		fakeTableRepo{},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 5}},
		nil,
		txManager,
		noopLogger{},
	)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetByRestaurantAndDate(context.Background(), 5, date)
	require.NoError(t, err)

	assert.Equal(t, 1, txManager.readOnlyCalls)
	assert.Equal(t, 0, txManager.serializableCalls)

	// Список содержит и отмененные бронирования
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Reservations[1].Status)
}

func TestGetByRestaurantAndDate_RestaurantNotFound(t *testing.T) {
	svc := NewService(
		&fakeReservationRepo{},
		fakeTableRepo{},
		&fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound},
		nil,
		&fakeTxManager{},
		noopLogger{},
	)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetByRestaurantAndDate(context.Background(), 99, date)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
