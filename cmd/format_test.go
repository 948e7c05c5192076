package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "BTCUSDC", normalizeSymbol("btc/usdc"))
	assert.Equal(t, "ETHUSDT", normalizeSymbol("ETHUSDT"))
}

func TestReadNumber(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  *float64
	}{
		{"string", "12.5", ptr(12.5)},
		{"empty string", "", nil},
		{"garbage", "abc", nil},
		{"json number", json.Number("3"), ptr(3)},
		{"float", 1.25, ptr(1.25)},
		{"nil", nil, nil},
		{"int", 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readNumber(tt.value)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestSignedFormatting(t *testing.T) {
	assert.Equal(t, "+$10.00", formatSignedUSD(ptr(10)))
	assert.Equal(t, "-$2.50", formatSignedUSD(ptr(-2.5)))
	assert.Equal(t, "$0.00", formatSignedUSD(ptr(0)))
	assert.Equal(t, "N/A", formatSignedUSD(nil))

	assert.Equal(t, "+1.50%", formatSignedPercent(ptr(1.5)))
	assert.Equal(t, "-3.00%", formatSignedPercent(ptr(-3)))
	assert.Equal(t, "N/A", formatSignedPercent(nil))
}

func TestOptionalFormatting(t *testing.T) {
	assert.Equal(t, "$5.00", formatOptionalUSD(ptr(5)))
	assert.Equal(t, "N/A", formatOptionalUSD(nil))
	assert.Equal(t, "12.35%", formatOptionalPercent(ptr(12.345)))
	assert.Equal(t, "3.10", formatOptionalNumber(ptr(3.1)))
	assert.Nil(t, formatOptionalNumber(nil))
}

func TestComputeSpread(t *testing.T) {
	spread := computeSpread(ptr(100), ptr(101.5))
	require.NotNil(t, spread)
	assert.InDelta(t, 1.5, *spread, 1e-9)
	assert.Nil(t, computeSpread(nil, ptr(1)))
}

func TestComputeExposurePercent(t *testing.T) {
	exposure := computeExposurePercent(ptr(1000), ptr(250))
	require.NotNil(t, exposure)
	assert.InDelta(t, 25, *exposure, 1e-9)
	assert.Nil(t, computeExposurePercent(ptr(0), ptr(250)))
	assert.Nil(t, computeExposurePercent(nil, ptr(250)))
}

func TestDeriveAvailableBalance(t *testing.T) {
	fromBalance := deriveAvailableBalance(map[string]interface{}{"spot": "100", "isolated_margin": "50"}, ptr(1000), ptr(10))
	require.NotNil(t, fromBalance)
	assert.InDelta(t, 150, *fromBalance, 1e-9)

	spotOnly := deriveAvailableBalance(map[string]interface{}{"spot": json.Number("70")}, nil, nil)
	require.NotNil(t, spotOnly)
	assert.InDelta(t, 70, *spotOnly, 1e-9)

	fallback := deriveAvailableBalance(map[string]interface{}{}, ptr(1000), ptr(110))
	require.NotNil(t, fallback)
	assert.InDelta(t, 890, *fallback, 1e-9)

	assert.Nil(t, deriveAvailableBalance(nil, nil, nil))
}

func TestColorizeNumberWithoutColor(t *testing.T) {
	assert.Equal(t, "text", colorizeNumber(nil, "text"))
	assert.Equal(t, "flat", colorizeNumber(ptr(0), "flat"))
}
