package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ErrInvalidTransition возвращается при недопустимом переходе статуса
var ErrInvalidTransition = errors.New("domain: invalid status transition")

// transitions таблица допустимых переходов статусов
// Вся валидация жизненного цикла централизована здесь - не дублировать проверки в call sites
var transitions = map[BookingStatus][]BookingStatus{
	StatusActive:    {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidateTransition проверяет допустимость перехода из статуса from в статус to
// Повторный переход в тот же терминальный статус не является ошибкой (idempotent no-op),
// caller решает сам, нужно ли его выполнять
func ValidateTransition(from, to BookingStatus) error {
	allowed, ok := transitions[from]
	if !ok {
		return ErrInvalidTransition
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return ErrInvalidTransition
}

// Booking represents a parking reservation in the system
type Booking struct {
	ID            int64
	ParkingLotID  int64
	UserID        int64
	SpotType      string
	SpotNumber    string // Человекочитаемая метка места (префикс + номер), косметическая
	StartTime     time.Time
	EndTime       time.Time
	DurationHours int
	TotalPrice    float64
	Status        BookingStatus

	// Denormalized data for history and tickets
	LotName     string
	LotLocation string

	PaymentMethod *string
	CancelledAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds a reserved spot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return ValidateTransition(b.Status, StatusCancelled) == nil
}

// CanBeConfirmed returns true if the booking can be confirmed by payment
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusActive
}

// IsDue returns true if the reservation window has ended
func (b *Booking) IsDue(now time.Time) bool {
	return !now.Before(b.EndTime)
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}
