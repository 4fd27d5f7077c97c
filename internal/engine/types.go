// Package engine implements the Manual J load calculation: per-room
// conduction, solar, internal-gain, infiltration, ventilation, and foundation
// loads, aggregated to a building total with diversity, duct, and
// area-correction factors, then sized and sanity-checked.
package engine

import (
	"time"

	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/envelope"
	"github.com/hvackit/loadcalc/internal/foundation"
	"github.com/hvackit/loadcalc/internal/infiltration"
	"github.com/hvackit/loadcalc/internal/model"
	"github.com/hvackit/loadcalc/internal/sizing"
	"github.com/hvackit/loadcalc/internal/thermalmass"
	"github.com/hvackit/loadcalc/internal/validate"
)

// Load component keys used in the per-room breakdown maps.
const (
	ComponentWallConduction   = "wall_conduction"
	ComponentRoofConduction   = "roof_conduction"
	ComponentWindowConduction = "window_conduction"
	ComponentWindowSolar      = "window_solar"
	ComponentPeople           = "people"
	ComponentPeopleLat        = "people_latent"
	ComponentLighting         = "lighting"
	ComponentEquipment        = "equipment"
	ComponentInfiltration     = "infiltration_sensible"
	ComponentInfiltrationLat  = "infiltration_latent"
	ComponentVentilation      = "ventilation_sensible"
	ComponentVentilationLat   = "ventilation_latent"
	ComponentFoundation       = "foundation"
)

// Factor keys used in the per-room applied-factor maps.
const (
	FactorThermalMass   = "thermal_mass"
	FactorCorner        = "corner"
	FactorExposure      = "exposure"
	FactorLowConfidence = "low_confidence"
	FactorInterior      = "interior_room"
)

// ComponentLoads maps a component key to its BTU/hr contribution.
type ComponentLoads map[string]float64

// Total sums all components.
func (c ComponentLoads) Total() float64 {
	var sum float64
	for _, v := range c {
		sum += v
	}
	return sum
}

// RoomLoadResult is the per-room calculation output. Rooms are never
// mutated; every adjustment lands here.
type RoomLoadResult struct {
	RoomName string         `json:"room_name"`
	RoomType model.RoomType `json:"room_type"`
	AreaSqFt float64        `json:"area_sqft"`
	Floor    int            `json:"floor"`

	HeatingBTU         float64 `json:"heating_btu"`
	CoolingBTU         float64 `json:"cooling_btu"`
	CoolingSensibleBTU float64 `json:"cooling_sensible_btu"`
	CoolingLatentBTU   float64 `json:"cooling_latent_btu"`

	// HeatingComponents and CoolingComponents break the pre-factor loads
	// down by component key.
	HeatingComponents ComponentLoads `json:"heating_components"`
	CoolingComponents ComponentLoads `json:"cooling_components"`

	// AppliedFactors records the post-processing multipliers
	// (factor key -> {heating, cooling} pair).
	AppliedFactors map[string]FactorPair `json:"applied_factors"`

	// CFMRequired is the supply airflow needed to meet the cooling
	// sensible load at the design supply ΔT.
	CFMRequired float64 `json:"cfm_required"`

	// DuctSizeIn is the recommended round-duct diameter in inches.
	DuctSizeIn int `json:"duct_size_in"`

	Confidence  float64  `json:"confidence"`
	DataQuality []string `json:"data_quality,omitempty"`

	MassClass thermalmass.Class `json:"mass_class"`
}

// FactorPair is a heating/cooling multiplier pair.
type FactorPair struct {
	Heating float64 `json:"heating"`
	Cooling float64 `json:"cooling"`
}

// DesignParameters records every building-level factor applied, for
// traceability of the aggregate numbers.
type DesignParameters struct {
	ClimateZone     string  `json:"climate_zone"`
	OutdoorHeatingF float64 `json:"outdoor_heating_f"`
	OutdoorCoolingF float64 `json:"outdoor_cooling_f"`
	IndoorHeatingF  float64 `json:"indoor_heating_f"`
	IndoorCoolingF  float64 `json:"indoor_cooling_f"`

	DiversityFactor      float64 `json:"diversity_factor"`
	DuctHeatingFactor    float64 `json:"duct_heating_factor"`
	DuctCoolingFactor    float64 `json:"duct_cooling_factor"`
	AreaCorrectionFactor float64 `json:"area_correction_factor"`

	// AreaDiscrepancyPct is the |declared - parsed| / declared ratio that
	// produced AreaCorrectionFactor.
	AreaDiscrepancyPct float64 `json:"area_discrepancy_pct"`

	MassClass thermalmass.Class `json:"mass_class"`
}

// BuildingLoadResult is the complete calculation output for one building.
type BuildingLoadResult struct {
	// RunID uniquely identifies this calculation run.
	RunID string `json:"run_id"`

	GeneratedAt time.Time `json:"generated_at"`

	// HeatingTotalBTU and CoolingTotalBTU are the post-factor aggregate
	// design loads, rounded to whole BTU/hr.
	HeatingTotalBTU int `json:"heating_total_btu"`
	CoolingTotalBTU int `json:"cooling_total_btu"`

	CoolingSensibleBTU int `json:"cooling_sensible_btu"`
	CoolingLatentBTU   int `json:"cooling_latent_btu"`

	Zones []RoomLoadResult `json:"zones"`

	Design DesignParameters `json:"design_parameters"`

	Climate  climate.Record      `json:"climate"`
	Envelope envelope.Properties `json:"envelope"`

	Infiltration infiltration.Result `json:"infiltration"`
	Foundation   foundation.Loads    `json:"foundation"`

	Equipment  sizing.Recommendation `json:"equipment_recommendations"`
	Validation validate.Report       `json:"validation"`

	// NeedsConfirmation echoes the envelope fields that were substituted
	// from defaults.
	NeedsConfirmation []string `json:"needs_confirmation,omitempty"`
}
