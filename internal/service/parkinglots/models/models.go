package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Статусы парковки для отображения
const (
	LotStatusAvailable = "Available"
	LotStatusFull      = "Full"
)

// LotResponse ответ с данными парковки
type LotResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Capacity       int     `json:"capacity"`
	AvailableSpots int     `json:"availableSpots"`
	PricePerHour   float64 `json:"pricePerHour"`
	Status         string  `json:"status"` // Available | Full
}

// LotListResponse ответ со списком парковок
type LotListResponse struct {
	Lots []LotResponse `json:"lots"`
}

// FromDomainLot конвертирует domain модель в DTO
func FromDomainLot(l *domain.ParkingLot) *LotResponse {
	if l == nil {
		return nil
	}

	status := LotStatusAvailable
	if l.IsFull() {
		status = LotStatusFull
	}

	return &LotResponse{
		ID:             l.ID,
		Name:           l.Name,
		Location:       l.Location,
		Capacity:       l.Capacity,
		AvailableSpots: l.AvailableSpots,
		PricePerHour:   l.PricePerHour,
		Status:         status,
	}
}

// FromDomainLotList конвертирует список domain моделей в DTO
func FromDomainLotList(lots []*domain.ParkingLot) *LotListResponse {
	resp := &LotListResponse{
		Lots: make([]LotResponse, 0, len(lots)),
	}

	for _, lot := range lots {
		if lotResp := FromDomainLot(lot); lotResp != nil {
			resp.Lots = append(resp.Lots, *lotResp)
		}
	}

	return resp
}
