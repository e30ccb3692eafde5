package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	lotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglot"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	lotRepo      LotRepository
	priceCalc    PriceCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	numberGen    SpotNumberGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	lotRepo LotRepository,
	priceCalc PriceCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		lotRepo:      lotRepo,
		priceCalc:    priceCalc,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		numberGen:    &RandSpotNumberGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Резервирование места, расчет цены и запись бронирования выполняются в
// одной сериализуемой транзакции: если после резервирования любой шаг
// падает, rollback возвращает место в пул - операция all-or-nothing
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, lot=%d, spotType=%s, duration=%dh",
		req.UserID, req.LotID, req.SpotType, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем парковку (тариф и денормализуемые данные)
		lot, err := uc.lotRepo.GetByID(txCtx, req.LotID)
		if err != nil {
			if errors.Is(err, lotRepo.ErrLotNotFound) {
				uc.logger.Warn("CreateBooking: lot id=%d not found", req.LotID)
				return ErrLotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get lot id=%d: %v", req.LotID, err)
			return fmt.Errorf("%w: failed to get lot: %v", ErrInternal, err)
		}

		// 3.2. Атомарно резервируем место (check-and-decrement одним UPDATE)
		if err := uc.lotRepo.Reserve(txCtx, req.LotID); err != nil {
			if errors.Is(err, lotRepo.ErrNoAvailableSpots) {
				uc.logger.Warn("CreateBooking: no available spots at lot id=%d", req.LotID)
				return ErrNoAvailableSpots
			}
			if errors.Is(err, lotRepo.ErrLotNotFound) {
				return ErrLotNotFound
			}
			uc.logger.Error("CreateBooking: failed to reserve spot at lot id=%d: %v", req.LotID, err)
			return fmt.Errorf("%w: failed to reserve spot: %v", ErrInternal, err)
		}

		// 3.3. Считаем стоимость
		totalPrice, err := uc.priceCalc.ComputePrice(lot.PricePerHour, req.SpotType, req.DurationHours)
		if err != nil {
			uc.logger.Warn("CreateBooking: price computation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}

		// 3.4. Генерируем метку места (префикс типа + случайный номер)
		spotType := domain.LookupSpotType(req.SpotType)
		spotNumber := fmt.Sprintf("%s%d", spotType.Prefix, uc.numberGen.SpotNumber())

		// 3.5. Создаем бронирование в статусе active с денормализацией
		// данных парковки для истории и билетов
		booking := &domain.Booking{
			ParkingLotID:  req.LotID,
			UserID:        req.UserID,
			SpotType:      req.SpotType,
			SpotNumber:    spotNumber,
			StartTime:     now,
			EndTime:       now.Add(time.Duration(req.DurationHours) * time.Hour),
			DurationHours: req.DurationHours,
			TotalPrice:    totalPrice,
			Status:        domain.StatusActive,
			LotName:       lot.Name,
			LotLocation:   lot.Location,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, spot=%s, price=%.2f",
		result.ID, result.SpotNumber, result.TotalPrice)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		ParkingLotID:  result.ParkingLotID,
		UserID:        result.UserID,
		SpotType:      result.SpotType,
		SpotNumber:    result.SpotNumber,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		DurationHours: result.DurationHours,
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		LotName:       result.LotName,
		LotLocation:   result.LotLocation,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
