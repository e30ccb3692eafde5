package parkinglot

import "github.com/m04kA/SMC-ParkingService/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
