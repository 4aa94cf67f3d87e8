package pricing

import (
	"testing"

	"cleanconnect-api-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMatchesRateTable(t *testing.T) {
	weights := []struct {
		raw   string
		value float64
	}{
		{"0", 0},
		{"0.1", 0.1},
		{"5", 5},
		{"12.5", 12.5},
		{" 3 ", 3},
	}

	for wasteType, rate := range PricePerKg {
		for _, w := range weights {
			got := Estimate(wasteType, w.raw)
			assert.InDelta(t, rate*w.value, got, 1e-9, "type %s weight %q", wasteType, w.raw)
		}
	}
}

func TestEstimateScenario(t *testing.T) {
	// 5 kg of plastic at ₹10/kg.
	assert.Equal(t, 50.0, Estimate(models.WastePlastic, "5"))
}

func TestEstimateZeroForUnsetType(t *testing.T) {
	assert.Equal(t, 0.0, Estimate("", "5"))
	assert.Equal(t, 0.0, Estimate("wood", "5"))
}

func TestEstimateZeroForUnparseableWeight(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.2.3", "NaN", "Inf", "-Inf"} {
		assert.Equal(t, 0.0, Estimate(models.WastePlastic, raw), "weight %q", raw)
	}
}

func TestEstimateDoesNotClampNegativeWeight(t *testing.T) {
	// The estimator trusts its input; the submission gateway is the layer
	// that rejects non-positive weights.
	assert.Equal(t, -10.0, Estimate(models.WastePlastic, "-1"))
}

func TestRateTableCoversEveryWasteType(t *testing.T) {
	for _, wt := range models.AllWasteTypes {
		_, ok := PricePerKg[wt]
		assert.True(t, ok, "missing rate for %s", wt)
	}
}
