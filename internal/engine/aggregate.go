package engine

import (
	"math"

	"github.com/hvackit/loadcalc/internal/model"
)

// areaCorrectionTrigger is the declared-vs-parsed discrepancy below which no
// correction applies.
const areaCorrectionTrigger = 0.10

// AreaCorrection reconciles declared building area with the sum of parsed
// room areas. The correction is graduated: small discrepancies apply half
// the raw ratio, larger ones apply 50-80% of it, and beyond 50% discrepancy
// the factor is hard-capped so missing area is never silently extrapolated.
func AreaCorrection(declaredSqFt, parsedSqFt, cap float64) (factor, discrepancy float64, capped bool) {
	if declaredSqFt <= 0 || parsedSqFt <= 0 {
		return 1.0, 0, false
	}

	discrepancy = math.Abs(declaredSqFt-parsedSqFt) / declaredSqFt
	if discrepancy <= areaCorrectionTrigger {
		return 1.0, discrepancy, false
	}

	ratio := declaredSqFt / parsedSqFt

	var share float64
	switch {
	case discrepancy < 0.20:
		share = 0.5
	case discrepancy <= 0.50:
		// Linear 50% -> 80% across the 20-50% discrepancy band.
		share = 0.5 + 0.3*(discrepancy-0.20)/0.30
	default:
		share = 0.8
		capped = true
	}

	factor = 1.0 + share*(ratio-1.0)

	if factor > cap {
		factor = cap
		capped = true
	}
	if floor := 1.0 / cap; factor < floor {
		factor = floor
		capped = true
	}

	return factor, discrepancy, capped
}

// DiversityFactor discounts aggregate cooling load for room-count
// non-coincidence: not every room peaks in the same hour. Heating gets no
// diversity; design heating is coincident by definition.
func DiversityFactor(roomCount int) float64 {
	switch {
	case roomCount <= 3:
		return 1.0
	case roomCount <= 6:
		return 0.95
	case roomCount <= 10:
		return 0.90
	case roomCount <= 15:
		return 0.85
	default:
		return 0.80
	}
}

// DuctFactors returns the heating/cooling distribution-loss multipliers for
// a duct configuration. Attic ducts live in the harshest environment.
func DuctFactors(cfg model.DuctConfig) FactorPair {
	switch cfg {
	case model.DuctedAttic:
		return FactorPair{Heating: 1.12, Cooling: 1.10}
	case model.DuctedCrawl:
		return FactorPair{Heating: 1.08, Cooling: 1.05}
	case model.Ductless:
		return FactorPair{Heating: 1.0, Cooling: 1.0}
	default:
		return FactorPair{Heating: 1.0, Cooling: 1.0}
	}
}

// aggregate applies the building-level factor chain to summed room loads.
// No generic safety factor is applied on top: equipment is sized to the
// calculated load.
func aggregate(zones []RoomLoadResult, params *DesignParameters) (heating, sensible, latent float64) {
	for i := range zones {
		heating += zones[i].HeatingBTU
		sensible += zones[i].CoolingSensibleBTU
		latent += zones[i].CoolingLatentBTU
	}

	heating *= params.AreaCorrectionFactor
	sensible *= params.AreaCorrectionFactor
	latent *= params.AreaCorrectionFactor

	sensible *= params.DiversityFactor
	latent *= params.DiversityFactor

	heating *= params.DuctHeatingFactor
	sensible *= params.DuctCoolingFactor
	latent *= params.DuctCoolingFactor

	return heating, sensible, latent
}
