package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение и отмена
// Создание бронирования - отдельный use case (create_booking)
type Service struct {
	bookingRepo BookingRepository
	lotRepo     LotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	lotRepo LotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		lotRepo:     lotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// ListActive получает бронирования пользователя, удерживающие место
// (статусы active и confirmed)
func (s *Service) ListActive(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListActive: fetching active bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID, domain.ActiveStatuses)
	if err != nil {
		s.logger.Error("ListActive: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActive: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// ListHistory получает историю бронирований пользователя (все статусы,
// сначала новые)
func (s *Service) ListHistory(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListHistory: fetching booking history for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID, nil)
	if err != nil {
		s.logger.Error("ListHistory: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListHistory: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и возвращает место в пул парковки
// Повторная отмена уже отмененного бронирования - no-op success (retry safety),
// отмена завершенного бронирования - ErrCannotCancel.
// Переход статуса и возврат места выполняются в одной транзакции, место
// освобождается ровно один раз
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getOwned(ctx, bookingID, userID)
	if err != nil {
		return err
	}

	// Идемпотентность: повторная отмена не ошибка и не трогает счетчик мест
	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d already cancelled, no-op", bookingID)
		return nil
	}

	if err := domain.ValidateTransition(booking.Status, domain.StatusCancelled); err != nil {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Compare-and-set: проходит только из active/confirmed
		cancelled, err := s.bookingRepo.Cancel(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !cancelled {
			// Статус сменился конкурентно (expiry sweep или повторная отмена) -
			// перечитываем и решаем по фактическому статусу
			current, err := s.bookingRepo.GetByID(txCtx, bookingID)
			if err != nil {
				return fmt.Errorf("%w: Cancel - recheck status: %v", ErrInternal, err)
			}
			if current.IsCancelled() {
				return nil
			}
			return ErrCannotCancel
		}

		// Переход выполнен этим вызовом - возвращаем место
		if err := s.lotRepo.Release(txCtx, booking.ParkingLotID); err != nil {
			return fmt.Errorf("%w: Cancel - release spot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrCannotCancel) {
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// getOwned получает бронирование и проверяет владельца
func (s *Service) getOwned(ctx context.Context, id int64, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getOwned: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getOwned: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwned - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("getOwned: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
