// Package validate runs post-calculation sanity checks: climate-zone load
// density bounds, vintage sqft/ton expectations, room-level plausibility,
// and internal invariant detection. Checks never fail the calculation; they
// annotate it.
package validate

import (
	"context"
	"fmt"

	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/logging"
	"github.com/hvackit/loadcalc/internal/model"
)

// Severity ranks a validation finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	// SeverityError findings do not block the numeric result but require
	// manual review before the result is used.
	SeverityError Severity = "error"
)

// Warning is one validation finding.
type Warning struct {
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	SuggestedFix string   `json:"suggested_fix,omitempty"`
}

// Report is the validation output attached to a building result.
type Report struct {
	// IsValid is false when any error-severity finding exists.
	IsValid bool `json:"is_valid"`

	Warnings []Warning `json:"warnings"`

	// SanityChecks maps check name to pass/fail for quick scanning.
	SanityChecks map[string]bool `json:"sanity_checks"`
}

// RoomCheck carries the per-room figures the validator inspects.
type RoomCheck struct {
	Name       string
	Type       model.RoomType
	AreaSqFt   float64
	HeatingBTU float64
	CoolingBTU float64

	// Components holds every load component (heating and cooling merged)
	// for negative-value detection.
	Components map[string]float64
}

// Input is everything the validator needs from a completed calculation.
type Input struct {
	Zone     string
	Vintage  model.Vintage
	AreaSqFt float64

	HeatingBTU float64
	CoolingBTU float64

	// AreaDiscrepancyPct is the declared-vs-parsed area disagreement
	// (0.30 means 30%).
	AreaDiscrepancyPct float64

	Rooms []RoomCheck
}

// heatingBTUPerSqFt bounds design heating density by IECC zone number.
//
//nolint:gochecknoglobals // Constant lookup table
var heatingBTUPerSqFt = map[int][2]float64{
	1: {2, 20},
	2: {5, 25},
	3: {8, 32},
	4: {10, 40},
	5: {14, 48},
	6: {18, 55},
	7: {22, 62},
	8: {26, 70},
}

// coolingBTUPerSqFt bounds design cooling density by IECC zone number.
//
//nolint:gochecknoglobals // Constant lookup table
var coolingBTUPerSqFt = map[int][2]float64{
	1: {18, 50},
	2: {16, 45},
	3: {14, 40},
	4: {12, 36},
	5: {10, 32},
	6: {8, 28},
	7: {6, 25},
	8: {5, 22},
}

// roomCoolingBTUPerSqFt bounds per-room cooling density by room type.
// Kitchens run hot; closets and hallways barely register.
//
//nolint:gochecknoglobals // Constant lookup table
var roomCoolingBTUPerSqFt = map[model.RoomType][2]float64{
	model.RoomKitchen:  {10, 90},
	model.RoomLiving:   {5, 65},
	model.RoomDining:   {5, 60},
	model.RoomBedroom:  {5, 55},
	model.RoomOffice:   {5, 60},
	model.RoomBathroom: {3, 70},
	model.RoomUtility:  {3, 60},
	model.RoomHallway:  {1, 40},
	model.RoomCloset:   {0, 40},
	model.RoomOther:    {2, 65},
}

// Area-discrepancy thresholds mirrored from the aggregator.
const (
	areaWarnThreshold  = 0.10
	areaErrorThreshold = 0.50
)

// Run executes all checks against a completed calculation.
//
//nolint:funlen // Sequential check list.
func Run(ctx context.Context, in Input) Report {
	log := logging.FromContext(ctx)

	report := Report{
		IsValid:      true,
		SanityChecks: make(map[string]bool, 5),
	}

	zone := climate.ZoneNumber(in.Zone)

	report.SanityChecks["heating_density"] = checkDensity(
		&report, "heating", in.HeatingBTU, in.AreaSqFt, heatingBTUPerSqFt[zone], in.Zone)
	report.SanityChecks["cooling_density"] = checkDensity(
		&report, "cooling", in.CoolingBTU, in.AreaSqFt, coolingBTUPerSqFt[zone], in.Zone)
	report.SanityChecks["sqft_per_ton"] = checkSqFtPerTon(&report, in)
	report.SanityChecks["area_reconciliation"] = checkAreaDiscrepancy(&report, in.AreaDiscrepancyPct)
	report.SanityChecks["room_plausibility"] = checkRooms(&report, in.Rooms)
	report.SanityChecks["non_negative_components"] = checkNegatives(&report, in.Rooms)

	for _, w := range report.Warnings {
		if w.Severity == SeverityError {
			report.IsValid = false
			break
		}
	}

	log.Debug().
		Str("component", "validate").
		Bool("is_valid", report.IsValid).
		Int("warnings", len(report.Warnings)).
		Msg("validation complete")

	return report
}

func checkDensity(report *Report, mode string, loadBTU, areaSqFt float64, bounds [2]float64, zone string) bool {
	if areaSqFt <= 0 || bounds[1] == 0 {
		return true
	}

	density := loadBTU / areaSqFt
	switch {
	case density < bounds[0]:
		report.Warnings = append(report.Warnings, Warning{
			Severity: SeverityInfo,
			Message: fmt.Sprintf("%s load density %.1f BTU/hr/sqft is below the zone %s range [%.0f, %.0f]",
				mode, density, zone, bounds[0], bounds[1]),
			SuggestedFix: "confirm envelope insulation values are not overstated",
		})
		return false
	case density > bounds[1]:
		report.Warnings = append(report.Warnings, Warning{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%s load density %.1f BTU/hr/sqft exceeds the zone %s range [%.0f, %.0f]",
				mode, density, zone, bounds[0], bounds[1]),
			SuggestedFix: "review envelope R-values, infiltration inputs, and window counts",
		})
		return false
	}
	return true
}

// checkSqFtPerTon applies the vintage-specific density expectation: newer
// construction carries a lighter cooling load per square foot.
func checkSqFtPerTon(report *Report, in Input) bool {
	if in.CoolingBTU <= 0 || in.AreaSqFt <= 0 {
		return true
	}

	lo, hi := 400.0, 1200.0
	if in.Vintage == model.Vintage2000to2020 || in.Vintage == model.VintageCurrentCode {
		lo, hi = 600.0, 1500.0
	}

	sqftPerTon := in.AreaSqFt / (in.CoolingBTU / 12000.0)
	if sqftPerTon < lo || sqftPerTon > hi {
		report.Warnings = append(report.Warnings, Warning{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%.0f sqft/ton is outside the expected [%.0f, %.0f] range for %s construction",
				sqftPerTon, lo, hi, in.Vintage),
			SuggestedFix: "verify declared building area and window counts before sizing equipment",
		})
		return false
	}
	return true
}

func checkAreaDiscrepancy(report *Report, pct float64) bool {
	switch {
	case pct > areaErrorThreshold:
		report.Warnings = append(report.Warnings, Warning{
			Severity: SeverityError,
			Message: fmt.Sprintf(
				"parsed room area disagrees with declared building area by %.0f%%; correction capped, result requires manual review",
				pct*100),
			SuggestedFix: "re-extract the floor plan or correct the declared total area",
		})
		return false
	case pct > areaWarnThreshold:
		report.Warnings = append(report.Warnings, Warning{
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"parsed room area disagrees with declared building area by %.0f%%; a graduated correction factor was applied",
				pct*100),
			SuggestedFix: "confirm all conditioned rooms were captured in the room list",
		})
		return false
	}
	return true
}

func checkRooms(report *Report, rooms []RoomCheck) bool {
	ok := true
	for _, room := range rooms {
		if room.AreaSqFt <= 0 {
			continue
		}

		bounds, known := roomCoolingBTUPerSqFt[room.Type]
		if !known {
			bounds = roomCoolingBTUPerSqFt[model.RoomOther]
		}

		density := room.CoolingBTU / room.AreaSqFt
		if density > bounds[1] {
			ok = false
			report.Warnings = append(report.Warnings, Warning{
				Severity: SeverityWarning,
				Message: fmt.Sprintf("room %q cooling density %.1f BTU/hr/sqft is implausibly high for a %s",
					room.Name, density, room.Type),
				SuggestedFix: "check the room's window count, orientation, and area",
			})
		}
	}
	return ok
}

// checkNegatives flags negative load components. The engine clamps these at
// source, so any appearance is an internal invariant violation.
func checkNegatives(report *Report, rooms []RoomCheck) bool {
	ok := true
	for _, room := range rooms {
		for component, value := range room.Components {
			if value < 0 {
				ok = false
				report.Warnings = append(report.Warnings, Warning{
					Severity: SeverityError,
					Message: fmt.Sprintf("room %q has a negative %s component (%.1f BTU/hr)",
						room.Name, component, value),
					SuggestedFix: "internal invariant violation, report this calculation's inputs",
				})
			}
		}
	}
	return ok
}
