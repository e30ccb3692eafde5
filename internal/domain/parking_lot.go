package domain

import "time"

// ParkingLot represents a parking facility with a fixed capacity and hourly rate
type ParkingLot struct {
	ID             int64
	Name           string
	Location       string
	Capacity       int
	AvailableSpots int
	PricePerHour   float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasAvailableSpots returns true if at least one spot is free
func (l *ParkingLot) HasAvailableSpots() bool {
	return l.AvailableSpots > 0
}

// IsFull returns true if no spots are free
func (l *ParkingLot) IsFull() bool {
	return l.AvailableSpots <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (l *ParkingLot) OccupancyRate() float64 {
	if l.Capacity == 0 {
		return 0
	}
	occupied := l.Capacity - l.AvailableSpots
	return float64(occupied) / float64(l.Capacity) * 100
}

// LotSnapshot read-only срез доступности парковки
// Инвариант: 0 <= AvailableSpots <= Capacity поддерживается операциями Reserve/Release
type LotSnapshot struct {
	Capacity       int
	AvailableSpots int
}
