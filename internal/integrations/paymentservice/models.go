package paymentservice

// ChargeRequest запрос на списание средств
type ChargeRequest struct {
	BookingID  int64   `json:"bookingId"`
	UserID     int64   `json:"userId"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"` // card | upi | cash
	CardNumber *string `json:"cardNumber,omitempty"`
}

// ChargeResponse ответ PaymentService
type ChargeResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"` // success | declined
}

// ErrorResponse модель ошибки от PaymentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
