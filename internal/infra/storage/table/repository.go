package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// Код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

// Repository репозиторий для работы со столиками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый столик
// Уникальность номера столика в рамках ресторана обеспечивается
// constraint'ом в БД, нарушение маппится в ErrDuplicateTableNumber
func (r *Repository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns(
			"restaurant_id",
			"table_number",
			"capacity",
		).
		Values(
			table.RestaurantID,
			table.TableNumber,
			table.Capacity,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&createdAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateTableNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	table.CreatedAt = createdAt.Time

	return table, nil
}

// GetByID получает столик по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var table domain.Table
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.Capacity,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	table.CreatedAt = createdAt.Time

	return &table, nil
}

// GetByRestaurantID получает все столики ресторана, упорядоченные по номеру
func (r *Repository) GetByRestaurantID(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("table_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// GetSuitable получает столики ресторана с вместимостью не меньше minCapacity.
// Упорядочены по вместимости ASC — первый свободный столик из этого списка
// автоматически является наилучшим (минимальным достаточным) вариантом.
func (r *Repository) GetSuitable(ctx context.Context, restaurantID int64, minCapacity int) ([]*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.GtOrEq{"capacity": minCapacity}).
		OrderBy("capacity ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSuitable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSuitable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// GetByRestaurantAndNumber получает столик по ресторану и номеру
func (r *Repository) GetByRestaurantAndNumber(ctx context.Context, restaurantID int64, tableNumber string) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.Eq{"table_number": tableNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantAndNumber - build select query: %v", ErrBuildQuery, err)
	}

	var table domain.Table
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.Capacity,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantAndNumber - scan table: %v", ErrScanRow, err)
	}

	table.CreatedAt = createdAt.Time

	return &table, nil
}

func (r *Repository) selectBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"restaurant_id",
		"table_number",
		"capacity",
		"created_at",
	).From("tables")
}

// scanTables сканирует результаты запроса в слайс столиков
func (r *Repository) scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var table domain.Table
		var createdAt sql.NullTime

		err := rows.Scan(
			&table.ID,
			&table.RestaurantID,
			&table.TableNumber,
			&table.Capacity,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}

		table.CreatedAt = createdAt.Time

		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
