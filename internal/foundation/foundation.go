// Package foundation models ground-coupled heat loss for the common
// residential foundation types. Ground coupling behaves differently from
// above-grade envelope: losses scale with perimeter rather than area for
// slabs, and the ground damps cooling-season gains almost entirely.
package foundation

import (
	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/model"
)

// Loads is the foundation contribution to the whole-building load.
type Loads struct {
	// HeatingBTU is the design heating loss through the foundation.
	HeatingBTU float64

	// CoolingSensibleBTU is the (small) sensible cooling gain. Ground
	// temperature sits well below summer design, so this is a fraction of
	// the heating-side conductance.
	CoolingSensibleBTU float64
}

// slabFFactor is the slab-edge loss coefficient (BTU/hr per ft of perimeter
// per °F) by IECC zone number. Colder zones carry code-mandated edge
// insulation, so the coefficient falls as the zone number rises.
//
//nolint:gochecknoglobals // Constant lookup table
var slabFFactor = map[int]float64{
	1: 0.90,
	2: 0.84,
	3: 0.79,
	4: 0.73,
	5: 0.68,
	6: 0.60,
	7: 0.55,
	8: 0.50,
}

// Below-grade and crawlspace coefficients.
const (
	// crawlspaceDeltaTFraction damps the indoor-outdoor ΔT for a vented
	// crawlspace, which floats between ground and ambient temperature.
	crawlspaceDeltaTFraction = 0.5

	// crawlspaceCoolingFraction scales crawlspace cooling gain relative to
	// its heating conductance.
	crawlspaceCoolingFraction = 0.3

	// basementWallUA is the effective below-grade wall loss
	// (BTU/hr per ft² of wall per °F against ground ΔT).
	basementWallUA = 0.10

	// basementFloorUA is the effective basement floor loss
	// (BTU/hr per ft² of floor per °F against ground ΔT).
	basementFloorUA = 0.02

	// basementCoolingFraction scales basement cooling gain relative to its
	// heating conductance. Deep ground stays cold all summer.
	basementCoolingFraction = 0.1

	// defaultBasementDepthFt is the assumed below-grade wall height.
	defaultBasementDepthFt = 7.0
)

// Input describes the building footprint the foundation sits under.
type Input struct {
	Type        model.FoundationType
	Zone        string
	PerimeterFt float64
	AreaSqFt    float64

	// FloorR is the resolved floor insulation R-value, used for
	// crawlspace floors.
	FloorR float64

	// HeatingDeltaTF and CoolingDeltaTF are the indoor-outdoor design
	// temperature differences.
	HeatingDeltaTF float64
	CoolingDeltaTF float64
}

// Calculate returns the foundation loads for the given input. Unknown or
// above-grade foundations contribute nothing; their floor loss is carried by
// the above-grade floor conduction path instead.
func Calculate(in Input) Loads {
	switch in.Type {
	case model.FoundationSlab:
		return slabLoads(in)
	case model.FoundationCrawlspace:
		return crawlspaceLoads(in)
	case model.FoundationBasement:
		return basementLoads(in)
	case model.FoundationAboveGrade:
		return Loads{}
	default:
		return Loads{}
	}
}

// slabLoads is the F-factor perimeter model. Slab cooling gain is negligible:
// the ground under a slab never reaches cooling design temperature.
func slabLoads(in Input) Loads {
	f, ok := slabFFactor[climate.ZoneNumber(in.Zone)]
	if !ok {
		f = slabFFactor[4]
	}
	return Loads{
		HeatingBTU: f * positive(in.PerimeterFt) * positive(in.HeatingDeltaTF),
	}
}

// crawlspaceLoads conducts through the floor into a vented crawlspace at half
// the full indoor-outdoor ΔT.
func crawlspaceLoads(in Input) Loads {
	r := in.FloorR
	if r <= 0 {
		r = 1
	}
	ua := positive(in.AreaSqFt) / r

	heating := ua * positive(in.HeatingDeltaTF) * crawlspaceDeltaTFraction
	return Loads{
		HeatingBTU:         heating,
		CoolingSensibleBTU: ua * positive(in.CoolingDeltaTF) * crawlspaceDeltaTFraction * crawlspaceCoolingFraction,
	}
}

// basementLoads combines below-grade wall loss (perimeter x depth) with
// basement floor loss (area), both against ground-damped coefficients.
func basementLoads(in Input) Loads {
	wallArea := positive(in.PerimeterFt) * defaultBasementDepthFt
	conductance := wallArea*basementWallUA + positive(in.AreaSqFt)*basementFloorUA

	return Loads{
		HeatingBTU:         conductance * positive(in.HeatingDeltaTF),
		CoolingSensibleBTU: conductance * positive(in.CoolingDeltaTF) * basementCoolingFraction,
	}
}

func positive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
