package create_booking

import "errors"

var (
	// ErrLotNotFound возвращается, когда парковка не найдена
	ErrLotNotFound = errors.New("create_booking: parking lot not found")

	// ErrNoAvailableSpots возвращается, когда на парковке нет свободных мест
	ErrNoAvailableSpots = errors.New("create_booking: no available spots")

	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
