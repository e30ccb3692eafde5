package create_booking

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// LotRepository интерфейс репозитория парковок (учет доступности)
type LotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingLot, error)
	Reserve(ctx context.Context, lotID int64) error
}

// PriceCalculator интерфейс калькулятора стоимости
type PriceCalculator interface {
	ComputePrice(pricePerHour float64, spotType string, durationHours int) (float64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// SpotNumberGenerator интерфейс генератора номеров мест (для тестирования)
type SpotNumberGenerator interface {
	SpotNumber() int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RandSpotNumberGenerator генератор случайных номеров мест 1..MaxSpotNumber
// Коллизии меток в пределах парковки возможны и не проверяются: метка
// косметическая, вместимость учитывается счетчиком парковки, а не метками
type RandSpotNumberGenerator struct{}

// SpotNumber возвращает случайный номер места
func (g *RandSpotNumberGenerator) SpotNumber() int {
	return rand.Intn(domain.MaxSpotNumber) + 1
}
