package expire_bookings

import (
	"context"
	"fmt"
)

// UseCase use case завершения истекших бронирований
// Моделирует правило "длительность истекла": место возвращается в пул по
// окончании окна бронирования независимо от действий пользователя.
// Безопасен при повторных и конкурентных запусках: выборка блокирует строки,
// а переход статуса - compare-and-set, поэтому проигравший гонку с отменой
// просто пропускает бронирование
type UseCase struct {
	bookingRepo  BookingRepository
	lotRepo      LotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	lotRepo LotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		lotRepo:      lotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute завершает все бронирования с истекшим окном
// Возвращает количество завершенных бронирований
func (uc *UseCase) Execute(ctx context.Context) (int, error) {
	now := uc.timeProvider.Now()

	var expired int

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		due, err := uc.bookingRepo.ListDue(txCtx, now)
		if err != nil {
			return fmt.Errorf("%w: failed to list due bookings: %v", ErrInternal, err)
		}

		for _, booking := range due {
			completed, err := uc.bookingRepo.Complete(txCtx, booking.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to complete booking id=%d: %v", ErrInternal, booking.ID, err)
			}

			// Конкурентная отмена успела раньше и уже вернула место
			if !completed {
				continue
			}

			if err := uc.lotRepo.Release(txCtx, booking.ParkingLotID); err != nil {
				return fmt.Errorf("%w: failed to release spot for booking id=%d: %v", ErrInternal, booking.ID, err)
			}

			expired++
		}

		return nil
	})

	if err != nil {
		uc.logger.Error("ExpireBookings: sweep failed: %v", err)
		return 0, err
	}

	if expired > 0 {
		uc.logger.Info("ExpireBookings: completed %d expired bookings", expired)
	}

	return expired, nil
}
