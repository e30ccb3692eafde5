package pricing

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности бронирования
	ErrInvalidDuration = errors.New("pricing: duration must be a positive number of hours")
)
