package restaurants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants/models"
)

// Service сервис для работы с ресторанами и их столиками
type Service struct {
	restaurantRepo RestaurantRepository
	tableRepo      TableRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресторанов
func NewService(
	restaurantRepo RestaurantRepository,
	tableRepo TableRepository,
	logger Logger,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		logger:         logger,
	}
}

// CreateRestaurant создает новый ресторан
func (s *Service) CreateRestaurant(ctx context.Context, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("CreateRestaurant: name=%q, hours=%s-%s", req.Name, req.OpeningTime, req.ClosingTime)

	if err := validateCreateRestaurant(req); err != nil {
		s.logger.Warn("CreateRestaurant: validation failed: %v", err)
		return nil, err
	}

	restaurant := &domain.Restaurant{
		Name:        strings.TrimSpace(req.Name),
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		TotalTables: 0,
	}

	created, err := s.restaurantRepo.Create(ctx, restaurant)
	if err != nil {
		s.logger.Error("CreateRestaurant: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRestaurant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRestaurant: successfully created restaurant id=%d", created.ID)
	return models.FromDomainRestaurant(created), nil
}

// GetRestaurant получает ресторан вместе со списком его столиков
func (s *Service) GetRestaurant(ctx context.Context, id int64) (*models.RestaurantWithTablesResponse, error) {
	s.logger.Info("GetRestaurant: fetching restaurant id=%d", id)

	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetRestaurant: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetRestaurant: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRestaurant - repository error: %v", ErrInternal, err)
	}

	tables, err := s.tableRepo.GetByRestaurantID(ctx, id)
	if err != nil {
		s.logger.Error("GetRestaurant: failed to get tables for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRestaurant - failed to get tables: %v", ErrInternal, err)
	}

	return &models.RestaurantWithTablesResponse{
		Restaurant: *models.FromDomainRestaurant(restaurant),
		Tables:     models.FromDomainTableList(tables),
	}, nil
}

// CreateTable создает столик в ресторане и обновляет счетчик столиков
func (s *Service) CreateTable(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("CreateTable: restaurant=%d, number=%q, capacity=%d",
		req.RestaurantID, req.TableNumber, req.Capacity)

	if err := validateCreateTable(req); err != nil {
		s.logger.Warn("CreateTable: validation failed: %v", err)
		return nil, err
	}

	// Проверяем существование ресторана
	if _, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("CreateTable: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("CreateTable: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: CreateTable - failed to get restaurant: %v", ErrInternal, err)
	}

	table := &domain.Table{
		RestaurantID: req.RestaurantID,
		TableNumber:  strings.TrimSpace(req.TableNumber),
		Capacity:     req.Capacity,
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateTableNumber) {
			s.logger.Warn("CreateTable: table number %q already exists in restaurant id=%d",
				req.TableNumber, req.RestaurantID)
			return nil, ErrDuplicateTableNumber
		}
		s.logger.Error("CreateTable: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTable - repository error: %v", ErrInternal, err)
	}

	// Обновляем счетчик столиков ресторана
	tables, err := s.tableRepo.GetByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		s.logger.Error("CreateTable: failed to recount tables for restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: CreateTable - failed to recount tables: %v", ErrInternal, err)
	}
	if err := s.restaurantRepo.UpdateTotalTables(ctx, req.RestaurantID, len(tables)); err != nil {
		s.logger.Error("CreateTable: failed to update total_tables for restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: CreateTable - failed to update total_tables: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTable: successfully created table id=%d in restaurant id=%d", created.ID, req.RestaurantID)
	return models.FromDomainTable(created), nil
}

// GetTables получает все столики ресторана
func (s *Service) GetTables(ctx context.Context, restaurantID int64) ([]models.TableResponse, error) {
	s.logger.Info("GetTables: fetching tables for restaurant id=%d", restaurantID)

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetTables: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetTables: failed to get restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetTables - failed to get restaurant: %v", ErrInternal, err)
	}

	tables, err := s.tableRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetTables: repository error for restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetTables - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTables: successfully fetched %d tables for restaurant id=%d", len(tables), restaurantID)
	return models.FromDomainTableList(tables), nil
}

// validateCreateRestaurant валидирует запрос на создание ресторана
func validateCreateRestaurant(req *models.CreateRestaurantRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := req.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid opening time: %v", ErrInvalidInput, err)
	}
	if err := req.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closing time: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateCreateTable валидирует запрос на создание столика
func validateCreateTable(req *models.CreateTableRequest) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.TableNumber) == "" {
		return fmt.Errorf("%w: tableNumber is required", ErrInvalidInput)
	}
	if len(req.TableNumber) > domain.MaxTableNumberLength {
		return fmt.Errorf("%w: tableNumber is too long", ErrInvalidInput)
	}
	if req.Capacity < domain.MinTableCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinTableCapacity)
	}
	return nil
}
