package confirm_booking

import (
	confirmBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Method     string  `json:"method"` // card | upi | cash
	CardNumber *string `json:"cardNumber,omitempty"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	BookingID     int64  `json:"bookingId"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest(bookingID, userID int64) *confirmBooking.Request {
	return &confirmBooking.Request{
		BookingID:  bookingID,
		UserID:     userID,
		Method:     r.Method,
		CardNumber: r.CardNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		BookingID:     resp.BookingID,
		Status:        resp.Status,
		PaymentMethod: resp.PaymentMethod,
		TransactionID: resp.TransactionID,
	}
}
