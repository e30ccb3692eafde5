package domain

// Payment methods accepted by the payment collaborator
const (
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
	PaymentMethodCash = "cash"
)

// Business validation constants
const (
	MinDurationHours = 1
	MaxSpotNumber    = 100 // Номера мест генерируются в диапазоне 1..100
)

// DurationChoices длительности бронирования, предлагаемые в UI
// Это UI affordance, а не доменное ограничение: createBooking принимает
// любое целое положительное число часов
var DurationChoices = []int{1, 2, 3, 4, 5, 6, 8, 12, 24}

// ActiveStatuses список статусов, при которых бронирование удерживает место
// Используется для фильтрации активных бронирований и в expiry sweep
var ActiveStatuses = []BookingStatus{
	StatusActive,
	StatusConfirmed,
}

// ValidPaymentMethods способы оплаты, принимаемые при подтверждении
var ValidPaymentMethods = []string{
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodCash,
}

// IsValidPaymentMethod проверяет, что способ оплаты известен
func IsValidPaymentMethod(method string) bool {
	for _, m := range ValidPaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
