package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_ComputePrice(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name          string
		pricePerHour  float64
		spotType      string
		durationHours int
		want          float64
	}{
		{name: "vip doubles the rate", pricePerHour: 100, spotType: "vip", durationHours: 3, want: 600},
		{name: "bike halves the rate", pricePerHour: 50, spotType: "bike", durationHours: 2, want: 50},
		{name: "electric surcharge", pricePerHour: 100, spotType: "electric", durationHours: 1, want: 120},
		{name: "handicapped discount", pricePerHour: 100, spotType: "handicapped", durationHours: 2, want: 160},
		{name: "normal rate unchanged", pricePerHour: 80, spotType: "normal", durationHours: 4, want: 320},
		{name: "unknown type uses base rate", pricePerHour: 80, spotType: "spaceship", durationHours: 1, want: 80},
		{name: "fractional rate rounds to cents", pricePerHour: 33.335, spotType: "normal", durationHours: 1, want: 33.34},
		{name: "duration outside UI choices is allowed", pricePerHour: 10, spotType: "car", durationHours: 7, want: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ComputePrice(tt.pricePerHour, tt.spotType, tt.durationHours)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_ComputePrice_Deterministic(t *testing.T) {
	calc := NewCalculator()

	// Цена должна воспроизводиться по сохраненным полям бронирования
	first, err := calc.ComputePrice(149.99, "electric", 12)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := calc.ComputePrice(149.99, "electric", 12)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCalculator_ComputePrice_InvalidDuration(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.ComputePrice(100, "car", 0)
	require.ErrorIs(t, err, ErrInvalidDuration)

	_, err = calc.ComputePrice(100, "car", -3)
	require.ErrorIs(t, err, ErrInvalidDuration)
}
