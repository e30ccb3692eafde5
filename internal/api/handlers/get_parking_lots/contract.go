package get_parking_lots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkinglots/models"
)

type ParkingLotService interface {
	List(ctx context.Context) (*models.LotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
