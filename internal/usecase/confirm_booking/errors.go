package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("confirm_booking: access denied")

	// ErrCannotConfirm возвращается, когда бронирование не в статусе active
	ErrCannotConfirm = errors.New("confirm_booking: booking cannot be confirmed")

	// ErrPaymentDeclined возвращается, когда платеж отклонен
	// Бронирование при этом остается активным
	ErrPaymentDeclined = errors.New("confirm_booking: payment declined")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("confirm_booking: invalid payment method")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
