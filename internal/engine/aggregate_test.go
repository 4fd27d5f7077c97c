package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvackit/loadcalc/internal/model"
)

func TestAreaCorrection(t *testing.T) {
	const cap = 1.20

	tests := []struct {
		name       string
		declared   float64
		parsed     float64
		wantFactor float64
		wantCapped bool
	}{
		{name: "exact match", declared: 2000, parsed: 2000, wantFactor: 1.0},
		{name: "within trigger", declared: 2000, parsed: 1850, wantFactor: 1.0},
		// 15% short: half of the raw ratio applies.
		// ratio = 2000/1700 = 1.17647; factor = 1 + 0.5*0.17647.
		{name: "small shortfall", declared: 2000, parsed: 1700, wantFactor: 1.0882352941},
		// 30% short: share = 0.5 + 0.3*(0.30-0.20)/0.30 = 0.6;
		// ratio = 2000/1400; factor = 1 + 0.6*(0.42857) but capped at 1.2.
		{name: "mid band capped", declared: 2000, parsed: 1400, wantFactor: 1.20, wantCapped: true},
		// 60% short: hard cap.
		{name: "beyond fifty percent", declared: 2000, parsed: 800, wantFactor: 1.20, wantCapped: true},
		// Parsed exceeds declared: correction shrinks, floored at 1/cap.
		{name: "parsed larger", declared: 1000, parsed: 2500, wantFactor: 1.0 / 1.20, wantCapped: true},
		{name: "zero declared", declared: 0, parsed: 1500, wantFactor: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, _, capped := AreaCorrection(tt.declared, tt.parsed, cap)
			assert.InDelta(t, tt.wantFactor, factor, 1e-6)
			assert.Equal(t, tt.wantCapped, capped)
		})
	}

	t.Run("DiscrepancyReported", func(t *testing.T) {
		_, discrepancy, _ := AreaCorrection(2000, 1400, cap)
		assert.InDelta(t, 0.30, discrepancy, 1e-9)
	})
}

func TestDiversityFactor(t *testing.T) {
	assert.InDelta(t, 1.0, DiversityFactor(1), 1e-9)
	assert.InDelta(t, 1.0, DiversityFactor(3), 1e-9)
	assert.InDelta(t, 0.95, DiversityFactor(6), 1e-9)
	assert.InDelta(t, 0.90, DiversityFactor(10), 1e-9)
	assert.InDelta(t, 0.85, DiversityFactor(15), 1e-9)
	assert.InDelta(t, 0.80, DiversityFactor(30), 1e-9)

	// Monotonically non-increasing with room count.
	prev := DiversityFactor(1)
	for n := 2; n <= 25; n++ {
		current := DiversityFactor(n)
		assert.LessOrEqual(t, current, prev)
		prev = current
	}
}

func TestDuctFactors(t *testing.T) {
	assert.Equal(t, FactorPair{Heating: 1.0, Cooling: 1.0}, DuctFactors(model.Ductless))
	assert.Equal(t, FactorPair{Heating: 1.08, Cooling: 1.05}, DuctFactors(model.DuctedCrawl))
	assert.Equal(t, FactorPair{Heating: 1.12, Cooling: 1.10}, DuctFactors(model.DuctedAttic))
}

func TestAggregate(t *testing.T) {
	zones := []RoomLoadResult{
		{HeatingBTU: 10000, CoolingSensibleBTU: 8000, CoolingLatentBTU: 1000},
		{HeatingBTU: 5000, CoolingSensibleBTU: 4000, CoolingLatentBTU: 500},
	}

	params := DesignParameters{
		AreaCorrectionFactor: 1.1,
		DiversityFactor:      0.95,
		DuctHeatingFactor:    1.12,
		DuctCoolingFactor:    1.10,
	}

	heating, sensible, latent := aggregate(zones, &params)

	// Heating: area correction and duct factor, no diversity.
	assert.InDelta(t, 15000*1.1*1.12, heating, 1e-6)

	// Cooling: area correction, then diversity, then duct factor.
	assert.InDelta(t, 12000*1.1*0.95*1.10, sensible, 1e-6)
	assert.InDelta(t, 1500*1.1*0.95*1.10, latent, 1e-6)
}
