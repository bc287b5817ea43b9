package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateRestaurantRequest запрос на создание ресторана
type CreateRestaurantRequest struct {
	Name        string
	OpeningTime types.TimeString
	ClosingTime types.TimeString
}

// CreateTableRequest запрос на создание столика
type CreateTableRequest struct {
	RestaurantID int64
	TableNumber  string
	Capacity     int
}

// RestaurantResponse модель ресторана для ответа
type RestaurantResponse struct {
	ID          int64
	Name        string
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	TotalTables int
	CreatedAt   time.Time
}

// TableResponse модель столика для ответа
type TableResponse struct {
	ID           int64
	RestaurantID int64
	TableNumber  string
	Capacity     int
	CreatedAt    time.Time
}

// RestaurantWithTablesResponse ресторан вместе со списком столиков
type RestaurantWithTablesResponse struct {
	Restaurant RestaurantResponse
	Tables     []TableResponse
}

// FromDomainRestaurant конвертирует domain.Restaurant в response модель
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		TotalTables: r.TotalTables,
		CreatedAt:   r.CreatedAt,
	}
}

// FromDomainTable конвертирует domain.Table в response модель
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		TableNumber:  t.TableNumber,
		Capacity:     t.Capacity,
		CreatedAt:    t.CreatedAt,
	}
}

// FromDomainTableList конвертирует список столиков
func FromDomainTableList(tables []*domain.Table) []TableResponse {
	result := make([]TableResponse, len(tables))
	for i, t := range tables {
		result[i] = *FromDomainTable(t)
	}
	return result
}
