package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ParkingLotID  int64  `json:"parkingLotId"`
	SpotType      string `json:"spotType"`
	DurationHours int    `json:"durationHours"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	ParkingLotID  int64   `json:"parkingLotId"`
	UserID        int64   `json:"userId"`
	SpotType      string  `json:"spotType"`
	SpotNumber    string  `json:"spotNumber"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	LotName       string  `json:"lotName"`
	LotLocation   string  `json:"lotLocation"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:        userID,
		LotID:         r.ParkingLotID,
		SpotType:      r.SpotType,
		DurationHours: r.DurationHours,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ParkingLotID:  resp.ParkingLotID,
		UserID:        resp.UserID,
		SpotType:      resp.SpotType,
		SpotNumber:    resp.SpotNumber,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		DurationHours: resp.DurationHours,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		LotName:       resp.LotName,
		LotLocation:   resp.LotLocation,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
