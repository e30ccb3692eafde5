package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	ParkingLotID  int64   `json:"parkingLotId"`
	UserID        int64   `json:"userId"`
	SpotType      string  `json:"spotType"`
	SpotNumber    string  `json:"spotNumber"`
	StartTime     string  `json:"startTime"` // ISO 8601
	EndTime       string  `json:"endTime"`   // ISO 8601
	DurationHours int     `json:"durationHours"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`

	// Денормализованные данные парковки
	LotName     string `json:"lotName"`
	LotLocation string `json:"lotLocation"`

	PaymentMethod *string `json:"paymentMethod,omitempty"`
	CancelledAt   *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		ParkingLotID:  b.ParkingLotID,
		UserID:        b.UserID,
		SpotType:      b.SpotType,
		SpotNumber:    b.SpotNumber,
		StartTime:     b.StartTime.Format(time.RFC3339),
		EndTime:       b.EndTime.Format(time.RFC3339),
		DurationHours: b.DurationHours,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		LotName:       b.LotName,
		LotLocation:   b.LotLocation,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
