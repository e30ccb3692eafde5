package confirm_booking

// Request запрос на подтверждение бронирования оплатой
type Request struct {
	BookingID  int64
	UserID     int64
	Method     string // card | upi | cash
	CardNumber *string
}

// Response результат подтверждения
type Response struct {
	BookingID     int64
	Status        string
	PaymentMethod string
	TransactionID string
}
