package create_booking

import "time"

// Request запрос на создание бронирования
type Request struct {
	UserID        int64
	LotID         int64
	SpotType      string
	DurationHours int
}

// Response результат создания бронирования
type Response struct {
	ID            int64
	ParkingLotID  int64
	UserID        int64
	SpotType      string
	SpotNumber    string
	StartTime     time.Time
	EndTime       time.Time
	DurationHours int
	TotalPrice    float64
	Status        string
	LotName       string
	LotLocation   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
