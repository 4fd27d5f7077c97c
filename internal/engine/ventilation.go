package engine

import (
	"github.com/hvackit/loadcalc/internal/model"
)

// Ventilation constants, 62.2-style.
const (
	// ventPerPersonCFM is the people-based ventilation rate.
	ventPerPersonCFM = 7.5

	// ventSensibleFactor converts CFM x ΔT(°F) to BTU/hr.
	ventSensibleFactor = 1.08

	// ventLatentFactor converts CFM x grain difference to BTU/hr.
	ventLatentFactor = 0.68
)

// ventAreaCFMPerSqFt is the area-based ventilation rate per room type.
// Moisture and odor sources get higher rates.
//
//nolint:gochecknoglobals // Constant lookup table
var ventAreaCFMPerSqFt = map[model.RoomType]float64{
	model.RoomKitchen:  0.06,
	model.RoomBathroom: 0.06,
	model.RoomUtility:  0.05,
	model.RoomLiving:   0.03,
	model.RoomDining:   0.03,
	model.RoomBedroom:  0.03,
	model.RoomOffice:   0.03,
	model.RoomHallway:  0.02,
	model.RoomCloset:   0.01,
	model.RoomGarage:   0.0,
	model.RoomOther:    0.03,
}

// ventMinimumCFM floors exhaust-driven rooms at their code minimums.
//
//nolint:gochecknoglobals // Constant lookup table
var ventMinimumCFM = map[model.RoomType]float64{
	model.RoomBathroom: 50,
	model.RoomKitchen:  25,
}

// VentilationCFM returns the required mechanical ventilation airflow for a
// room: people rate plus area rate, floored at the room-type minimum.
func VentilationCFM(rt model.RoomType, areaSqFt float64) float64 {
	if areaSqFt < 0 {
		areaSqFt = 0
	}

	rate, ok := ventAreaCFMPerSqFt[rt]
	if !ok {
		rate = ventAreaCFMPerSqFt[model.RoomOther]
	}

	cfm := Occupants(rt)*ventPerPersonCFM + areaSqFt*rate
	if minCFM, ok := ventMinimumCFM[rt]; ok && cfm < minCFM {
		cfm = minCFM
	}
	return cfm
}

// VentilationSensibleBTU returns the sensible load of conditioning
// ventilation air across a temperature difference. Negative ΔT yields 0.
func VentilationSensibleBTU(cfm, deltaTF float64) float64 {
	if cfm <= 0 || deltaTF < 0 {
		return 0
	}
	return ventSensibleFactor * cfm * deltaTF
}

// VentilationLatentBTU returns the latent cooling load of ventilation air
// given the climate-zone grain difference. Dry climates (negative grains)
// yield 0.
func VentilationLatentBTU(cfm, grainDifference float64) float64 {
	if cfm <= 0 || grainDifference <= 0 {
		return 0
	}
	return ventLatentFactor * cfm * grainDifference
}
