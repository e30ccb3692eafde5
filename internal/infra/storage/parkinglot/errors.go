package parkinglot

import "errors"

var (
	// ErrLotNotFound возвращается, когда парковка не найдена
	ErrLotNotFound = errors.New("parkinglot.repository: parking lot not found")

	// ErrNoAvailableSpots возвращается, когда на парковке нет свободных мест
	// в момент резервирования
	ErrNoAvailableSpots = errors.New("parkinglot.repository: no available spots")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parkinglot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parkinglot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parkinglot.repository: failed to scan row")
)
