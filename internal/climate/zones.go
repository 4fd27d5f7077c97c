package climate

import (
	"errors"
	"fmt"
)

// ErrMissingDesignTemps is returned when a climate record lacks the design
// temperatures the load calculation cannot run without.
var ErrMissingDesignTemps = errors.New("climate record missing design temperatures")

// DefaultZone is the documented fallback when a location cannot be resolved.
const DefaultZone = "4A"

// Record is the resolved climate data for a location.
type Record struct {
	// Location echoes the lookup key that produced this record.
	Location string `json:"location"`

	// Zone is the IECC climate zone, e.g. "4A".
	Zone string `json:"climate_zone"`

	// HeatingDesignTempF is the 99% winter design dry-bulb (°F).
	HeatingDesignTempF float64 `json:"heating_design_temp_99"`

	// CoolingDesignTempF is the 1% summer design dry-bulb (°F).
	CoolingDesignTempF float64 `json:"cooling_design_temp_1"`

	// GrainDifference is the design humidity-ratio difference in grains/lb
	// used for latent ventilation loads.
	GrainDifference float64 `json:"grain_difference"`

	// SummerRH is the coincident outdoor relative humidity at the cooling
	// design condition, as a fraction.
	SummerRH float64 `json:"summer_rh"`

	// LatitudeDeg is a representative latitude for solar-angle estimates.
	LatitudeDeg float64 `json:"latitude_deg"`

	// TypicalWallR / TypicalRoofR are code-typical envelope R-values for the
	// zone, advisory only.
	TypicalWallR float64 `json:"typical_wall_r,omitempty"`
	TypicalRoofR float64 `json:"typical_roof_r,omitempty"`

	// Found is false when the record is the documented default rather than a
	// resolved match.
	Found bool `json:"found"`
}

// Validate enforces the record invariant: both design temperatures present
// and ordered (heating design < cooling design, always).
func (r *Record) Validate() error {
	if r.Zone == "" {
		return fmt.Errorf("%w: climate zone is empty", ErrMissingDesignTemps)
	}
	if r.HeatingDesignTempF == 0 && r.CoolingDesignTempF == 0 {
		return fmt.Errorf("%w: zone %s", ErrMissingDesignTemps, r.Zone)
	}
	if r.HeatingDesignTempF >= r.CoolingDesignTempF {
		return fmt.Errorf("%w: heating design %.0f°F must be below cooling design %.0f°F",
			ErrMissingDesignTemps, r.HeatingDesignTempF, r.CoolingDesignTempF)
	}
	return nil
}

// ZoneNumber returns the numeric portion of the IECC zone ("5B" -> 5).
// Unparseable zones return 4, the moderate middle of the scale.
func ZoneNumber(zone string) int {
	if zone == "" {
		return 4
	}
	n := int(zone[0] - '0')
	if n < 1 || n > 8 {
		return 4
	}
	return n
}

// zoneData is the per-zone design-condition table. Design temperatures are
// representative metro values for each IECC zone; the provider overlays them
// with location-specific entries when available.
//
//nolint:gochecknoglobals // Constant lookup table, injected via NewStaticProvider
var zoneData = map[string]Record{
	"1A": {Zone: "1A", HeatingDesignTempF: 47, CoolingDesignTempF: 91, GrainDifference: 62, SummerRH: 0.58, LatitudeDeg: 26, TypicalWallR: 13, TypicalRoofR: 30},
	"2A": {Zone: "2A", HeatingDesignTempF: 29, CoolingDesignTempF: 94, GrainDifference: 56, SummerRH: 0.55, LatitudeDeg: 30, TypicalWallR: 13, TypicalRoofR: 38},
	"2B": {Zone: "2B", HeatingDesignTempF: 34, CoolingDesignTempF: 108, GrainDifference: 12, SummerRH: 0.25, LatitudeDeg: 33, TypicalWallR: 13, TypicalRoofR: 38},
	"3A": {Zone: "3A", HeatingDesignTempF: 23, CoolingDesignTempF: 92, GrainDifference: 42, SummerRH: 0.52, LatitudeDeg: 34, TypicalWallR: 15, TypicalRoofR: 38},
	"3B": {Zone: "3B", HeatingDesignTempF: 30, CoolingDesignTempF: 103, GrainDifference: 8, SummerRH: 0.22, LatitudeDeg: 35, TypicalWallR: 15, TypicalRoofR: 38},
	"3C": {Zone: "3C", HeatingDesignTempF: 38, CoolingDesignTempF: 79, GrainDifference: 4, SummerRH: 0.45, LatitudeDeg: 37, TypicalWallR: 15, TypicalRoofR: 30},
	"4A": {Zone: "4A", HeatingDesignTempF: 17, CoolingDesignTempF: 91, GrainDifference: 34, SummerRH: 0.50, LatitudeDeg: 40, TypicalWallR: 20, TypicalRoofR: 49},
	"4B": {Zone: "4B", HeatingDesignTempF: 16, CoolingDesignTempF: 94, GrainDifference: 6, SummerRH: 0.25, LatitudeDeg: 35, TypicalWallR: 20, TypicalRoofR: 49},
	"4C": {Zone: "4C", HeatingDesignTempF: 26, CoolingDesignTempF: 83, GrainDifference: 10, SummerRH: 0.45, LatitudeDeg: 47, TypicalWallR: 20, TypicalRoofR: 49},
	"5A": {Zone: "5A", HeatingDesignTempF: 2, CoolingDesignTempF: 89, GrainDifference: 30, SummerRH: 0.48, LatitudeDeg: 42, TypicalWallR: 20, TypicalRoofR: 49},
	"5B": {Zone: "5B", HeatingDesignTempF: 1, CoolingDesignTempF: 90, GrainDifference: 5, SummerRH: 0.20, LatitudeDeg: 40, TypicalWallR: 20, TypicalRoofR: 49},
	"6A": {Zone: "6A", HeatingDesignTempF: -11, CoolingDesignTempF: 88, GrainDifference: 28, SummerRH: 0.48, LatitudeDeg: 45, TypicalWallR: 21, TypicalRoofR: 49},
	"6B": {Zone: "6B", HeatingDesignTempF: -13, CoolingDesignTempF: 88, GrainDifference: 5, SummerRH: 0.20, LatitudeDeg: 46, TypicalWallR: 21, TypicalRoofR: 49},
	"7":  {Zone: "7", HeatingDesignTempF: -19, CoolingDesignTempF: 84, GrainDifference: 22, SummerRH: 0.45, LatitudeDeg: 47, TypicalWallR: 21, TypicalRoofR: 60},
	"8":  {Zone: "8", HeatingDesignTempF: -43, CoolingDesignTempF: 78, GrainDifference: 10, SummerRH: 0.40, LatitudeDeg: 64, TypicalWallR: 25, TypicalRoofR: 60},
}

// zipPrefixZones maps 3-digit ZIP prefixes to climate zones for major metros.
// The resolution chain falls through to zipRegionZones when no prefix matches.
//
//nolint:gochecknoglobals // Constant lookup table, injected via NewStaticProvider
var zipPrefixZones = map[string]string{
	// Northeast
	"100": "4A", "101": "4A", "102": "4A", "104": "4A", "112": "4A", // NYC
	"021": "5A", "022": "5A", "024": "5A", // Boston
	"191": "4A", "190": "4A", // Philadelphia
	"212": "4A", // Baltimore
	"200": "4A", "202": "4A", "203": "4A", // Washington DC
	"030": "5A", "031": "5A", // southern NH
	"040": "6A", "041": "6A", // Portland ME
	"052": "6A", "054": "6A", // Vermont
	// Southeast
	"303": "3A", "305": "3A", "306": "3A", // Atlanta
	"331": "1A", "330": "1A", "333": "1A", // Miami / Ft Lauderdale
	"328": "2A", "327": "2A", // Orlando
	"336": "2A", // Tampa
	"282": "3A", // Charlotte
	"294": "3A", // Charleston SC
	"370": "4A", "371": "4A", // Nashville
	// Midwest
	"606": "5A", "605": "5A", "604": "5A", // Chicago
	"441": "5A", "442": "5A", // Cleveland
	"432": "5A", // Columbus
	"462": "5A", // Indianapolis
	"481": "5A", "482": "5A", // Detroit
	"532": "6A", // Milwaukee
	"554": "6A", "553": "6A", "551": "6A", // Minneapolis / St Paul
	"631": "4A", // St Louis
	"641": "4A", // Kansas City
	"681": "5A", // Omaha
	"558": "7", // Duluth
	// South central
	"770": "2A", "772": "2A", "773": "2A", // Houston
	"752": "3A", "753": "3A", // Dallas
	"787": "2A", // Austin
	"782": "2A", // San Antonio
	"701": "2A", // New Orleans
	"731": "3A", // Oklahoma City
	"722": "3A", // Little Rock
	// Mountain / Southwest
	"802": "5B", "800": "5B", "801": "5B", // Denver
	"850": "2B", "852": "2B", "853": "2B", // Phoenix
	"857": "2B", // Tucson
	"871": "4B", // Albuquerque
	"841": "5B", // Salt Lake City
	"891": "3B", // Las Vegas
	"837": "5B", // Boise
	"596": "6B", // Helena
	"577": "6B", // Rapid City
	// West coast
	"900": "3B", "902": "3B", "913": "3B", // Los Angeles
	"921": "3B", // San Diego
	"941": "3C", "940": "3C", // San Francisco
	"946": "3C", // Oakland
	"958": "3B", // Sacramento
	"980": "4C", "981": "4C", // Seattle
	"972": "4C", "970": "4C", // Portland OR
	"995": "7",  // Anchorage
	"997": "8",  // Fairbanks
	"968": "1A", // Honolulu
}

// zipRegionZones maps the leading ZIP digit to a regional default zone when
// no prefix entry exists. These are the most common zone per national region.
//
//nolint:gochecknoglobals // Constant lookup table, injected via NewStaticProvider
var zipRegionZones = map[byte]string{
	'0': "5A", // New England
	'1': "4A", // NY / PA
	'2': "4A", // Mid-Atlantic / VA / WV / Carolinas
	'3': "3A", // Southeast
	'4': "5A", // OH / KY / MI / IN
	'5': "6A", // Upper Midwest
	'6': "5A", // IL / MO / KS / NE
	'7': "3A", // TX / OK / LA / AR
	'8': "5B", // Mountain West
	'9': "3C", // Pacific
}
