package paymentservice

import "errors"

var (
	// ErrPaymentDeclined возвращается, когда платеж отклонен
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
