// Package sizing converts aggregate cooling load into Manual S equipment
// recommendations: nominal tonnage options rated by their ratio to the
// calculated load, never oversized past the Manual S ceiling.
package sizing

import (
	"fmt"
	"math"

	"github.com/hvackit/loadcalc/internal/model"
)

// BTUPerTon converts BTU/hr of cooling to tons of refrigeration.
const BTUPerTon = 12000.0

// Manual S sizing ratio bounds.
const (
	// GoodRatioMin..GoodRatioMax is the preferred sizing window.
	GoodRatioMin = 0.95
	GoodRatioMax = 1.15

	// AcceptableRatioMax is the ceiling beyond which an option is never
	// recommended. Oversized equipment short-cycles and dehumidifies
	// poorly.
	AcceptableRatioMax = 1.25
)

// SqFtPerTon sanity bounds. Outside this window the load density itself is
// suspect, regardless of equipment choice.
const (
	SqFtPerTonMin = 400.0
	SqFtPerTonMax = 2000.0
)

// nominalTons lists the catalog sizes considered for residential equipment.
//
//nolint:gochecknoglobals // Constant lookup table
var nominalTons = []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 5.0}

// Rating is the Manual S match quality of a candidate size.
type Rating string

const (
	RatingGood       Rating = "Good"
	RatingAcceptable Rating = "Acceptable"
	RatingPoor       Rating = "Poor"
)

// Rate returns the Manual S rating for a size/load ratio.
func Rate(ratio float64) Rating {
	switch {
	case ratio >= GoodRatioMin && ratio <= GoodRatioMax:
		return RatingGood
	case ratio > GoodRatioMax && ratio <= AcceptableRatioMax:
		return RatingAcceptable
	default:
		return RatingPoor
	}
}

// SizeOption is one candidate equipment size.
type SizeOption struct {
	CapacityTons float64 `json:"capacity_tons"`
	CapacityBTU  float64 `json:"capacity_btu"`

	// Ratio is capacity over calculated load.
	Ratio float64 `json:"ratio"`

	SqFtPerTon float64 `json:"sqft_per_ton"`
	Rating     Rating  `json:"manual_s_rating"`
}

// Recommendation is the complete equipment sizing output.
type Recommendation struct {
	// SystemType names the equipment class implied by the heating fuel.
	SystemType string `json:"system_type"`

	CalculatedLoadTons float64 `json:"calculated_load_tons"`

	// ManualSRange is the acceptable capacity window in tons.
	ManualSRange string `json:"manual_s_sizing_range"`

	SizeOptions []SizeOption `json:"size_options"`

	// SqFtPerTon is the building density at the calculated load.
	SqFtPerTon float64 `json:"sqft_per_ton"`

	// DensityConcern is set when SqFtPerTon falls outside the sanity
	// window, pointing at a likely input problem.
	DensityConcern string `json:"density_concern,omitempty"`
}

// systemTypeForFuel maps the heating fuel to a recommended system class.
func systemTypeForFuel(fuel model.HeatingFuel) string {
	switch fuel {
	case model.FuelHeatPump:
		return "heat pump"
	case model.FuelElectric:
		return "electric furnace with central AC"
	case model.FuelGas:
		return "gas furnace with central AC"
	default:
		return "gas furnace with central AC"
	}
}

// Recommend sizes equipment for the given cooling load. Options whose ratio
// exceeds AcceptableRatioMax are excluded outright; undersized options below
// GoodRatioMin appear only when nothing in the window exists, rated Poor.
func Recommend(coolingBTU, areaSqFt float64, fuel model.HeatingFuel) Recommendation {
	loadTons := coolingBTU / BTUPerTon

	rec := Recommendation{
		SystemType:         systemTypeForFuel(fuel),
		CalculatedLoadTons: roundTo(loadTons, 2),
	}

	if loadTons <= 0 {
		rec.ManualSRange = "n/a"
		return rec
	}

	rec.ManualSRange = fmt.Sprintf("%.2f-%.2f tons", loadTons*GoodRatioMin, loadTons*AcceptableRatioMax)

	if areaSqFt > 0 {
		rec.SqFtPerTon = roundTo(areaSqFt/loadTons, 0)
		switch {
		case rec.SqFtPerTon < SqFtPerTonMin:
			rec.DensityConcern = fmt.Sprintf(
				"%.0f sqft/ton is below %.0f: cooling load is unusually high for the area", rec.SqFtPerTon, SqFtPerTonMin)
		case rec.SqFtPerTon > SqFtPerTonMax:
			rec.DensityConcern = fmt.Sprintf(
				"%.0f sqft/ton is above %.0f: cooling load is unusually low for the area", rec.SqFtPerTon, SqFtPerTonMax)
		}
	}

	var inWindow []SizeOption
	var bestUnder *SizeOption

	for _, tons := range nominalTons {
		ratio := tons / loadTons
		if ratio > AcceptableRatioMax {
			continue
		}

		opt := SizeOption{
			CapacityTons: tons,
			CapacityBTU:  tons * BTUPerTon,
			Ratio:        roundTo(ratio, 3),
			Rating:       Rate(ratio),
		}
		if areaSqFt > 0 {
			opt.SqFtPerTon = roundTo(areaSqFt/tons, 0)
		}

		if ratio >= GoodRatioMin {
			inWindow = append(inWindow, opt)
		} else {
			// Track the largest undersized option as a fallback.
			o := opt
			bestUnder = &o
		}
	}

	if len(inWindow) > 0 {
		rec.SizeOptions = inWindow
	} else if bestUnder != nil {
		rec.SizeOptions = []SizeOption{*bestUnder}
	}

	return rec
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
