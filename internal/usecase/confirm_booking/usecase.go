package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/paymentservice"
)

// UseCase use case подтверждения бронирования оплатой
// Оплата - внешний collaborator: ядро только фиксирует результат
// переходом active -> confirmed, данные карт не обрабатываются
type UseCase struct {
	bookingRepo   BookingRepository
	paymentClient PaymentServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentClient PaymentServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		logger:        logger,
	}
}

// Execute выполняет подтверждение бронирования
// При отклоненном платеже бронирование остается в статусе active
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking=%d, user=%d, method=%s", req.BookingID, req.UserID, req.Method)

	// 1. Валидация способа оплаты
	if !domain.IsValidPaymentMethod(req.Method) {
		uc.logger.Warn("ConfirmBooking: invalid payment method=%s", req.Method)
		return nil, ErrInvalidPaymentMethod
	}

	// 2. Получаем бронирование и проверяем владельца
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("ConfirmBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeConfirmed() {
		uc.logger.Warn("ConfirmBooking: booking id=%d cannot be confirmed, status=%s",
			req.BookingID, booking.Status)
		return nil, ErrCannotConfirm
	}

	// 3. Проводим платеж
	chargeResp, err := uc.paymentClient.Charge(ctx, &paymentservice.ChargeRequest{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		Amount:     booking.TotalPrice,
		Method:     req.Method,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentDeclined) {
			uc.logger.Warn("ConfirmBooking: payment declined for booking id=%d", req.BookingID)
			return nil, ErrPaymentDeclined
		}
		uc.logger.Error("ConfirmBooking: payment failed for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: payment failed: %v", ErrInternal, err)
	}

	// 4. Фиксируем переход active -> confirmed (compare-and-set)
	confirmed, err := uc.bookingRepo.Confirm(ctx, req.BookingID, req.Method)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to confirm booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	// Статус сменился между проверкой и CAS (отмена или expiry) -
	// платеж прошел, но подтверждение уже невозможно
	if !confirmed {
		uc.logger.Warn("ConfirmBooking: booking id=%d status changed concurrently", req.BookingID)
		return nil, ErrCannotConfirm
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed, transaction=%s",
		req.BookingID, chargeResp.TransactionID)

	return &Response{
		BookingID:     req.BookingID,
		Status:        string(domain.StatusConfirmed),
		PaymentMethod: req.Method,
		TransactionID: chargeResp.TransactionID,
	}, nil
}
