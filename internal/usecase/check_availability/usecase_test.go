package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
)

type fakeTableRepo struct {
	table *domain.Table
	err   error
}

func (f *fakeTableRepo) GetByID(_ context.Context, _ int64) (*domain.Table, error) {
	return f.table, f.err
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetByTableAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(reservations []*domain.Reservation) *UseCase {
	return NewUseCase(
		&fakeTableRepo{table: &domain.Table{ID: 10, RestaurantID: 1, Capacity: 4}},
		&fakeReservationRepo{reservations: reservations},
		noopLogger{},
	)
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func TestExecute_AvailableWhenNoReservations(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID:       10,
		Date:          testDate(),
		StartTime:     "19:00",
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_UnavailableOnOverlap(t *testing.T) {
	// Существующее бронирование 19:00 - 21:00
	existing := []*domain.Reservation{{
		TableID:       10,
		StartTime:     "19:00",
		DurationHours: 2,
		Status:        domain.StatusConfirmed,
	}}

	uc := newTestUseCase(existing)

	// 20:00 - 22:00 пересекается
	resp, err := uc.Execute(context.Background(), &Request{
		TableID:       10,
		Date:          testDate(),
		StartTime:     "20:00",
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)

	// 21:00 - 23:00 встык, не пересекается
	resp, err = uc.Execute(context.Background(), &Request{
		TableID:       10,
		Date:          testDate(),
		StartTime:     "21:00",
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)

	// 17:00 - 19:00 встык с другой стороны
	resp, err = uc.Execute(context.Background(), &Request{
		TableID:       10,
		Date:          testDate(),
		StartTime:     "17:00",
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_CancelledReservationIgnored(t *testing.T) {
	existing := []*domain.Reservation{{
		TableID:       10,
		StartTime:     "19:00",
		DurationHours: 2,
		Status:        domain.StatusCancelled,
	}}

	uc := newTestUseCase(existing)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID:       10,
		Date:          testDate(),
		StartTime:     "19:00",
		DurationHours: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_TableNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeTableRepo{err: table.ErrTableNotFound},
		&fakeReservationRepo{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		TableID:       99,
		Date:          testDate(),
		StartTime:     "19:00",
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		TableID:       0,
		Date:          testDate(),
		StartTime:     "19:00",
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		TableID:       10,
		Date:          testDate(),
		StartTime:     "25:00",
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		TableID:       10,
		Date:          testDate(),
		StartTime:     "19:00",
		DurationHours: 9,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
