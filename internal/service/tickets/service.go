package tickets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

// Service рендерит текстовые билеты по бронированиям
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса билетов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Render возвращает текстовый билет по бронированию
// Доступен только владельцу бронирования
func (s *Service) Render(ctx context.Context, bookingID int64, userID int64) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Render: booking id=%d not found", bookingID)
			return "", ErrBookingNotFound
		}
		s.logger.Error("Render: repository error for booking id=%d: %v", bookingID, err)
		return "", fmt.Errorf("%w: Render - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("Render: access denied for user=%d to booking id=%d", userID, bookingID)
		return "", ErrAccessDenied
	}

	s.logger.Info("Render: rendered ticket for booking id=%d", bookingID)
	return RenderTicket(booking), nil
}

// RenderTicket формирует текстовое представление билета.
// Формат зафиксирован контрактом с существующими потребителями билетов:
// ровно семь полей, по одному на строку, в этом порядке. Не менять
// ни состав, ни порядок строк
func RenderTicket(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Booking ID: %d\n", b.ID)
	fmt.Fprintf(&sb, "Parking Lot: %s\n", b.LotName)
	fmt.Fprintf(&sb, "Address: %s\n", b.LotLocation)
	fmt.Fprintf(&sb, "Spot Number: %s\n", b.SpotNumber)
	fmt.Fprintf(&sb, "Start/End: %s - %s\n", b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Total Price: %.2f\n", b.TotalPrice)
	fmt.Fprintf(&sb, "Status: %s\n", b.Status)

	return sb.String()
}
