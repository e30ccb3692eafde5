package parkinglots

import (
	"context"
	"errors"
	"fmt"

	lotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglot"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkinglots/models"
)

// Service сервис read-моделей парковок для витрины
type Service struct {
	lotRepo LotRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса парковок
func NewService(lotRepo LotRepository, logger Logger) *Service {
	return &Service{
		lotRepo: lotRepo,
		logger:  logger,
	}
}

// List возвращает список всех парковок с текущей доступностью
func (s *Service) List(ctx context.Context) (*models.LotListResponse, error) {
	lots, err := s.lotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d parking lots", len(lots))
	return models.FromDomainLotList(lots), nil
}

// GetByID возвращает парковку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.LotResponse, error) {
	lot, err := s.lotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, lotRepo.ErrLotNotFound) {
			s.logger.Warn("GetByID: parking lot id=%d not found", id)
			return nil, ErrLotNotFound
		}
		s.logger.Error("GetByID: repository error for lot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLot(lot), nil
}
