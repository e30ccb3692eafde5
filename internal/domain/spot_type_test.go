package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSpotType(t *testing.T) {
	tests := []struct {
		tag            string
		wantMultiplier float64
		wantPrefix     string
	}{
		{tag: "vip", wantMultiplier: 2.0, wantPrefix: "A"},
		{tag: "normal", wantMultiplier: 1.0, wantPrefix: "B"},
		{tag: "car", wantMultiplier: 1.0, wantPrefix: "C"},
		{tag: "bike", wantMultiplier: 0.5, wantPrefix: "D"},
		{tag: "electric", wantMultiplier: 1.2, wantPrefix: "E"},
		{tag: "handicapped", wantMultiplier: 0.8, wantPrefix: "H"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			def := LookupSpotType(tt.tag)
			assert.Equal(t, tt.tag, def.Tag)
			assert.Equal(t, tt.wantMultiplier, def.Multiplier)
			assert.Equal(t, tt.wantPrefix, def.Prefix)
		})
	}
}

func TestLookupSpotType_UnknownTagFallsBack(t *testing.T) {
	// Неизвестный тип не ошибка: действует permissive fallback
	def := LookupSpotType("hoverboard")

	assert.Equal(t, "hoverboard", def.Tag)
	assert.Equal(t, DefaultSpotTypeMultiplier, def.Multiplier)
	assert.Equal(t, DefaultSpotTypePrefix, def.Prefix)
}

func TestSpotTypes_ReturnsCopy(t *testing.T) {
	first := SpotTypes()
	require.NotEmpty(t, first)

	first[0].Multiplier = 99

	second := SpotTypes()
	assert.NotEqual(t, 99.0, second[0].Multiplier, "mutation must not leak into the table")
}
