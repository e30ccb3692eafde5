package parkinglots

import "errors"

var (
	// ErrLotNotFound возвращается, когда парковка не найдена
	ErrLotNotFound = errors.New("parkinglots: parking lot not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("parkinglots: internal error")
)
