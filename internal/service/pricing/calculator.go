package pricing

import (
	"math"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Calculator вычисляет стоимость бронирования
// Цена - чистая функция от (тариф, тип места, длительность): повторное
// вычисление по сохраненным полям обязано воспроизвести сохраненную цену
type Calculator struct{}

// NewCalculator создает новый калькулятор стоимости
func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputePrice вычисляет итоговую стоимость бронирования:
// round2(pricePerHour * multiplier(spotType) * durationHours)
// Округление до 2 знаков выполняется в момент вычисления, а не при
// отображении, чтобы сохраненная цена была стабильной и воспроизводимой.
// Длительность - любое целое положительное число часов: набор вариантов,
// предлагаемый в UI, не является доменным ограничением
func (c *Calculator) ComputePrice(pricePerHour float64, spotType string, durationHours int) (float64, error) {
	if durationHours <= 0 {
		return 0, ErrInvalidDuration
	}

	multiplier := domain.LookupSpotType(spotType).Multiplier
	return round2(pricePerHour * multiplier * float64(durationHours)), nil
}

// round2 округляет до 2 десятичных знаков
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
