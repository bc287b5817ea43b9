package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
)

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	created := *r
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeReservationRepo) GetByTableAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeTableRepo struct {
	table *domain.Table
	err   error
}

func (f *fakeTableRepo) GetByID(_ context.Context, _ int64) (*domain.Table, error) {
	return f.table, f.err
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	err        error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, f.err
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider фиксированное "сейчас" для тестов
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testNow() time.Time {
	return time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		RestaurantID:  1,
		TableID:       10,
		CustomerName:  "Иван Петров",
		CustomerPhone: "+7 900 123-45-67",
		PartySize:     2,
		Date:          testDate(),
		StartTime:     "19:00",
		DurationHours: 2,
	}
}

func newTestUseCase(rest *domain.Restaurant, tbl *domain.Table, existing []*domain.Reservation) (*UseCase, *fakeReservationRepo) {
	repo := &fakeReservationRepo{existing: existing}
	uc := NewUseCase(
		repo,
		&fakeTableRepo{table: tbl},
		&fakeRestaurantRepo{restaurant: rest},
		nil,
		fakeTxManager{},
		&fixedTimeProvider{now: testNow()},
		noopLogger{},
	)
	return uc, repo
}

func defaultRestaurant() *domain.Restaurant {
	return &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "22:00"}
}

func defaultTable() *domain.Table {
	return &domain.Table{ID: 10, RestaurantID: 1, TableNumber: "T1", Capacity: 4}
}

func TestExecute_Success(t *testing.T) {
	uc, repo := newTestUseCase(defaultRestaurant(), defaultTable(), nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "19:00", resp.StartTime.String())
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_TableAlreadyReserved(t *testing.T) {
	existing := []*domain.Reservation{{
		TableID:       10,
		StartTime:     "20:00",
		DurationHours: 2,
		Status:        domain.StatusConfirmed,
	}}

	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), existing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTableNotAvailable)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	// Существующее 17:00 - 19:00, новое 19:00 - 21:00
	existing := []*domain.Reservation{{
		TableID:       10,
		StartTime:     "17:00",
		DurationHours: 2,
		Status:        domain.StatusConfirmed,
	}}

	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), existing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	existing := []*domain.Reservation{{
		TableID:       10,
		StartTime:     "19:00",
		DurationHours: 2,
		Status:        domain.StatusCancelled,
	}}

	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), existing)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(
		repo,
		&fakeTableRepo{table: defaultTable()},
		&fakeRestaurantRepo{err: restaurant.ErrRestaurantNotFound},
		nil,
		fakeTxManager{},
		&fixedTimeProvider{now: testNow()},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_TableNotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(
		repo,
		&fakeTableRepo{err: table.ErrTableNotFound},
		&fakeRestaurantRepo{restaurant: defaultRestaurant()},
		nil,
		fakeTxManager{},
		&fixedTimeProvider{now: testNow()},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_TableWrongRestaurant(t *testing.T) {
	tbl := &domain.Table{ID: 10, RestaurantID: 2, Capacity: 4}
	uc, _ := newTestUseCase(defaultRestaurant(), tbl, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTableWrongRestaurant)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), nil)

	req := validRequest()
	req.PartySize = 6
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_DateInPast(t *testing.T) {
	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), nil)

	req := validRequest()
	req.Date = time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayAllowed(t *testing.T) {
	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), nil)

	// Сегодняшняя дата допустима независимо от времени суток
	req := validRequest()
	req.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), nil)

	// 21:00 + 2 часа = 23:00, позже закрытия
	req := validRequest()
	req.StartTime = "21:00"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	// До открытия
	req = validRequest()
	req.StartTime = "09:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	// Ровно до закрытия допустимо: 20:00 + 2 часа = 22:00
	req = validRequest()
	req.StartTime = "20:00"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OvernightRestaurant(t *testing.T) {
	night := &domain.Restaurant{ID: 1, OpeningTime: "22:00", ClosingTime: "02:00"}
	uc, _ := newTestUseCase(night, defaultTable(), nil)

	// 23:00 + 2 часа = 01:00 следующего дня, внутри ночного окна
	req := validRequest()
	req.StartTime = "23:00"
	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	// 01:00 + 2 часа = 03:00, позже закрытия
	req = validRequest()
	req.StartTime = "01:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_MidnightOverflowRejectedForDayRestaurant(t *testing.T) {
	day := &domain.Restaurant{ID: 1, OpeningTime: "10:00", ClosingTime: "23:00"}
	uc, _ := newTestUseCase(day, defaultTable(), nil)

	// 22:30 + 2 часа уходит за полночь, дневной ресторан так не работает
	req := validRequest()
	req.StartTime = "22:30"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(defaultRestaurant(), defaultTable(), nil)

	req := validRequest()
	req.CustomerName = "   "
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.CustomerPhone = "12345"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.PartySize = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.DurationHours = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.DurationHours = 8.5
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = "19:60"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Date = time.Time{}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
