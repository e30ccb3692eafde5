package get_parking_lot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkinglots/models"
)

type ParkingLotService interface {
	GetByID(ctx context.Context, id int64) (*models.LotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
