package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, whole int
		expected    float64
	}{
		{1, 2, 50},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{0, 10, 0},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Percentage(tt.part, tt.whole), "%d/%d", tt.part, tt.whole)
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 3308.6, RoundCents(decimal.RequireFromString("3308.6")))
	assert.Equal(t, 0.1, RoundCents(decimal.RequireFromString("0.099")))
	assert.Equal(t, -12.35, RoundCents(decimal.RequireFromString("-12.345")))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, id, idLength)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, id)
}
