// Package envelope resolves authoritative envelope thermal properties from
// AI-extracted values, construction-vintage defaults, and conservative
// fallbacks, in that order of precedence.
package envelope

import (
	"github.com/hvackit/loadcalc/internal/model"
)

// Defaults is a complete envelope property set for one construction era.
type Defaults struct {
	WallR           float64
	RoofR           float64
	FloorR          float64
	WindowU         float64
	WindowSHGC      float64
	CeilingHeightFt float64

	// LeakageClass is the construction-quality infiltration label assumed
	// for the era when no blower-door data exists.
	LeakageClass string

	// WallConstruction is the assumed structural system for thermal-bridging
	// and mass classification.
	WallConstruction string
}

// vintageDefaults maps construction eras to their default envelope. Values
// track typical code minimums for each era; pre-code housing gets measured
// retrofit-stock averages.
//
//nolint:gochecknoglobals // Constant lookup table
var vintageDefaults = map[model.Vintage]Defaults{
	model.VintagePre1980: {
		WallR: 7, RoofR: 11, FloorR: 4,
		WindowU: 1.10, WindowSHGC: 0.75,
		CeilingHeightFt:  8,
		LeakageClass:     "loose",
		WallConstruction: "wood_frame",
	},
	model.Vintage1980to2000: {
		WallR: 11, RoofR: 19, FloorR: 11,
		WindowU: 0.65, WindowSHGC: 0.65,
		CeilingHeightFt:  8,
		LeakageClass:     "average",
		WallConstruction: "wood_frame",
	},
	model.Vintage2000to2020: {
		WallR: 15, RoofR: 30, FloorR: 19,
		WindowU: 0.40, WindowSHGC: 0.40,
		CeilingHeightFt:  9,
		LeakageClass:     "average",
		WallConstruction: "wood_frame",
	},
	model.VintageCurrentCode: {
		WallR: 21, RoofR: 49, FloorR: 30,
		WindowU: 0.30, WindowSHGC: 0.30,
		CeilingHeightFt:  9,
		LeakageClass:     "tight",
		WallConstruction: "wood_frame",
	},
}

// DefaultsForVintage returns the era defaults. Unknown vintages get the
// conservative 1980-2000 set, the middle of the housing stock.
func DefaultsForVintage(v model.Vintage) Defaults {
	if d, ok := vintageDefaults[v]; ok {
		return d
	}
	return vintageDefaults[model.Vintage1980to2000]
}
