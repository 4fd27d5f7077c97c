// Package infiltration converts blower-door test results or construction
// leakage classes into natural infiltration airflow, and that airflow into
// sensible and latent loads.
package infiltration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hvackit/loadcalc/internal/climate"
)

// Load-conversion constants (standard-air).
const (
	// SensibleFactor converts CFM x ΔT(°F) to BTU/hr.
	SensibleFactor = 1.08

	// LatentFactor converts CFM x Δ(humidity ratio, lb/lb) to BTU/hr.
	LatentFactor = 4840.0

	// minutesPerHour converts air changes per hour to per-minute flow.
	minutesPerHour = 60.0
)

// Shielding describes wind exposure of the building site for N-factor
// adjustment.
type Shielding int

const (
	// ShieldingNormal is typical suburban shielding.
	ShieldingNormal Shielding = iota
	// ShieldingWell is heavy shielding (dense trees, adjacent structures).
	ShieldingWell
	// ShieldingExposed is open, windy terrain.
	ShieldingExposed
)

// ErrBlowerDoor is returned when a blower-door string cannot be parsed.
var ErrBlowerDoor = errors.New("unparseable blower door result")

// blowerDoorPattern matches "3 ACH50", "3.5ach50", "1800 CFM50" and similar.
var blowerDoorPattern = regexp.MustCompile(`(?i)^\s*([0-9]+(?:\.[0-9]+)?)\s*(ACH|CFM)\s*50\s*$`)

// Method identifies which input path produced a Result.
type Method string

const (
	// MethodBlowerDoor means a measured blower-door result was used.
	MethodBlowerDoor Method = "blower_door"
	// MethodLeakageClass means a construction-quality class was used.
	MethodLeakageClass Method = "leakage_class"
)

// Result is the resolved natural infiltration airflow for a volume.
type Result struct {
	// NaturalCFM is the estimated natural infiltration airflow.
	NaturalCFM float64

	// Method records which path produced the estimate.
	Method Method

	// ACH50 and CFM50 hold the blower-door figures when Method is
	// MethodBlowerDoor (both populated via conversion).
	ACH50 float64
	CFM50 float64

	// ACHNatural is the estimated natural air-change rate.
	ACHNatural float64
}

// ParseBlowerDoor parses a blower-door result string such as "3 ACH50" or
// "1800 CFM50" into its numeric value and unit.
func ParseBlowerDoor(s string) (value float64, unit string, err error) {
	m := blowerDoorPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, "", fmt.Errorf("%w: %q", ErrBlowerDoor, s)
	}
	value, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", ErrBlowerDoor, s)
	}
	return value, strings.ToUpper(m[2]) + "50", nil
}

// ACH50ToCFM50 converts air changes per hour at 50 Pa to CFM at 50 Pa for
// the given volume (ft³).
func ACH50ToCFM50(ach50, volumeCuFt float64) float64 {
	return ach50 * volumeCuFt / minutesPerHour
}

// CFM50ToACH50 is the inverse conversion.
func CFM50ToACH50(cfm50, volumeCuFt float64) float64 {
	if volumeCuFt <= 0 {
		return 0
	}
	return cfm50 * minutesPerHour / volumeCuFt
}

// nFactorByZone holds the base LBL-style N factor per IECC zone number.
// Colder zones have stronger stack effect, so a lower divisor yields more
// natural infiltration per unit of CFM50.
//
//nolint:gochecknoglobals // Constant lookup table
var nFactorByZone = map[int]float64{
	1: 25.0,
	2: 24.0,
	3: 22.0,
	4: 20.0,
	5: 18.0,
	6: 16.0,
	7: 15.0,
	8: 14.0,
}

// NFactor returns the CFM50 -> natural-CFM divisor for a climate zone,
// story count, and shielding class. Taller buildings see roughly 10% more
// infiltration per story above one; shielding shifts the divisor ±10%.
func NFactor(zone string, stories int, shielding Shielding) float64 {
	n, ok := nFactorByZone[climate.ZoneNumber(zone)]
	if !ok {
		n = nFactorByZone[4]
	}

	switch stories {
	case 1:
		// Base table is single-story.
	case 2:
		n *= 0.90
	default:
		if stories >= 3 {
			n *= 0.81
		}
	}

	switch shielding {
	case ShieldingWell:
		n *= 1.10
	case ShieldingExposed:
		n *= 0.90
	case ShieldingNormal:
		// No adjustment.
	}

	return n
}

// FromBlowerDoor converts a blower-door result string to natural
// infiltration airflow for the given conditioned volume.
func FromBlowerDoor(raw string, volumeCuFt float64, zone string, stories int, shielding Shielding) (Result, error) {
	value, unit, err := ParseBlowerDoor(raw)
	if err != nil {
		return Result{}, err
	}

	var ach50, cfm50 float64
	switch unit {
	case "ACH50":
		ach50 = value
		cfm50 = ACH50ToCFM50(ach50, volumeCuFt)
	case "CFM50":
		cfm50 = value
		ach50 = CFM50ToACH50(cfm50, volumeCuFt)
	}

	n := NFactor(zone, stories, shielding)
	natural := cfm50 / n

	return Result{
		NaturalCFM: natural,
		Method:     MethodBlowerDoor,
		ACH50:      ach50,
		CFM50:      cfm50,
		ACHNatural: CFM50ToACH50(natural, volumeCuFt),
	}, nil
}

// leakageClassACH maps construction-quality classes to natural air-change
// ranges. The midpoint of the range is used, adjusted for climate zone.
//
//nolint:gochecknoglobals // Constant lookup table
var leakageClassACH = map[string][2]float64{
	"very_tight": {0.10, 0.20},
	"tight":      {0.20, 0.35},
	"average":    {0.35, 0.50},
	"loose":      {0.50, 0.80},
	"very_loose": {0.80, 1.20},
}

// FromLeakageClass converts a construction-quality class to natural
// infiltration airflow for the given conditioned volume. The class midpoint
// is adjusted ±5% per climate-zone-number step away from zone 4: colder
// zones drive more stack and wind infiltration.
func FromLeakageClass(class string, volumeCuFt float64, zone string) Result {
	rng, ok := leakageClassACH[strings.ToLower(strings.TrimSpace(class))]
	if !ok {
		rng = leakageClassACH["average"]
	}

	ach := (rng[0] + rng[1]) / 2.0
	ach *= 1.0 + 0.05*float64(climate.ZoneNumber(zone)-4)
	if ach < rng[0] {
		ach = rng[0]
	}

	return Result{
		NaturalCFM: ach * volumeCuFt / minutesPerHour,
		Method:     MethodLeakageClass,
		ACHNatural: ach,
	}
}

// SensibleBTU returns the sensible load (BTU/hr) of an airflow crossing a
// temperature difference. Negative ΔT yields 0.
func SensibleBTU(cfm, deltaTF float64) float64 {
	if deltaTF < 0 || cfm <= 0 {
		return 0
	}
	return SensibleFactor * cfm * deltaTF
}

// LatentBTU returns the latent cooling load (BTU/hr) of an airflow when the
// outdoor humidity ratio exceeds the indoor one; otherwise 0.
func LatentBTU(cfm, outdoorW, indoorW float64) float64 {
	if cfm <= 0 || outdoorW <= indoorW {
		return 0
	}
	return LatentFactor * cfm * (outdoorW - indoorW)
}
