package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RoomType classifies a room for occupancy, internal-gain, and ventilation
// rate lookups.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type RoomType int

const (
	// RoomOther is the catch-all for unclassified rooms.
	RoomOther RoomType = iota
	// RoomBedroom is a sleeping room.
	RoomBedroom
	// RoomBathroom is a full or half bath.
	RoomBathroom
	// RoomKitchen is a kitchen, with elevated equipment gains.
	RoomKitchen
	// RoomLiving is a living or family room.
	RoomLiving
	// RoomDining is a dining room.
	RoomDining
	// RoomOffice is a home office or study.
	RoomOffice
	// RoomUtility is a utility, laundry, or mechanical room.
	RoomUtility
	// RoomHallway is a hallway or stair landing.
	RoomHallway
	// RoomCloset is a closet or storage room.
	RoomCloset
	// RoomGarage is an attached garage (usually unconditioned).
	RoomGarage
)

// roomTypeNames maps RoomType to its wire label.
//
//nolint:gochecknoglobals // Constant lookup table
var roomTypeNames = map[RoomType]string{
	RoomOther:    "other",
	RoomBedroom:  "bedroom",
	RoomBathroom: "bathroom",
	RoomKitchen:  "kitchen",
	RoomLiving:   "living",
	RoomDining:   "dining",
	RoomOffice:   "office",
	RoomUtility:  "utility",
	RoomHallway:  "hallway",
	RoomCloset:   "closet",
	RoomGarage:   "garage",
}

// String returns the wire label for a RoomType.
func (r RoomType) String() string {
	if name, ok := roomTypeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(r))
}

// MarshalJSON implements json.Marshaler to output RoomType as string.
func (r RoomType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse RoomType from string.
// Unrecognised labels map to RoomOther rather than failing, since room typing
// comes from an upstream extractor whose vocabulary may drift.
func (r *RoomType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing room type: %w", err)
	}
	*r = ParseRoomType(str)
	return nil
}

// ParseRoomType maps a label to a RoomType, defaulting to RoomOther.
func ParseRoomType(s string) RoomType {
	s = strings.ToLower(strings.TrimSpace(s))
	for rt, name := range roomTypeNames {
		if name == s {
			return rt
		}
	}
	// Common extractor synonyms.
	switch s {
	case "master bedroom", "primary bedroom", "guest bedroom":
		return RoomBedroom
	case "family", "family room", "great room", "den":
		return RoomLiving
	case "laundry", "mechanical", "mudroom":
		return RoomUtility
	case "bath", "powder room", "wc":
		return RoomBathroom
	case "study":
		return RoomOffice
	}
	return RoomOther
}

// Orientation is a compass orientation for a room's dominant exterior
// exposure. OrientationUnknown triggers four-way solar averaging.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Orientation int

const (
	// OrientationUnknown means the extractor could not determine facing.
	OrientationUnknown Orientation = iota
	// OrientationN faces north.
	OrientationN
	// OrientationS faces south.
	OrientationS
	// OrientationE faces east.
	OrientationE
	// OrientationW faces west.
	OrientationW
	// OrientationNE faces northeast.
	OrientationNE
	// OrientationNW faces northwest.
	OrientationNW
	// OrientationSE faces southeast.
	OrientationSE
	// OrientationSW faces southwest.
	OrientationSW
)

// orientationNames maps Orientation to its wire label.
//
//nolint:gochecknoglobals // Constant lookup table
var orientationNames = map[Orientation]string{
	OrientationUnknown: "unknown",
	OrientationN:       "N",
	OrientationS:       "S",
	OrientationE:       "E",
	OrientationW:       "W",
	OrientationNE:      "NE",
	OrientationNW:      "NW",
	OrientationSE:      "SE",
	OrientationSW:      "SW",
}

// String returns the wire label for an Orientation.
func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(o))
}

// MarshalJSON implements json.Marshaler to output Orientation as string.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Orientation from string.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing orientation: %w", err)
	}
	*o = ParseOrientation(str)
	return nil
}

// ParseOrientation maps a label to an Orientation, defaulting to unknown.
func ParseOrientation(s string) Orientation {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return OrientationN
	case "S", "SOUTH":
		return OrientationS
	case "E", "EAST":
		return OrientationE
	case "W", "WEST":
		return OrientationW
	case "NE", "NORTHEAST":
		return OrientationNE
	case "NW", "NORTHWEST":
		return OrientationNW
	case "SE", "SOUTHEAST":
		return OrientationSE
	case "SW", "SOUTHWEST":
		return OrientationSW
	default:
		return OrientationUnknown
	}
}

// IsCardinal reports whether o is one of the four cardinal directions.
func (o Orientation) IsCardinal() bool {
	switch o {
	case OrientationN, OrientationS, OrientationE, OrientationW:
		return true
	default:
		return false
	}
}

// ThermalExposure classifies how exposed a room is to outdoor conditions.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type ThermalExposure int

const (
	// ExposureLow is a sheltered room (no multiplier).
	ExposureLow ThermalExposure = iota
	// ExposureMedium is a partially exposed room.
	ExposureMedium
	// ExposureHigh is a highly exposed room (top corner, large glazing).
	ExposureHigh
)

// String returns the wire label for a ThermalExposure.
func (t ThermalExposure) String() string {
	switch t {
	case ExposureLow:
		return "low"
	case ExposureMedium:
		return "medium"
	case ExposureHigh:
		return "high"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// MarshalJSON implements json.Marshaler to output ThermalExposure as string.
func (t ThermalExposure) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse ThermalExposure from string.
func (t *ThermalExposure) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing thermal exposure: %w", err)
	}
	switch strings.ToLower(str) {
	case "low":
		*t = ExposureLow
	case "medium":
		*t = ExposureMedium
	case "high":
		*t = ExposureHigh
	default:
		return fmt.Errorf("unknown thermal exposure: %q", str)
	}
	return nil
}

// DuctConfig describes where the distribution system runs.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type DuctConfig int

const (
	// Ductless means mini-splits or radiant; no duct losses.
	Ductless DuctConfig = iota
	// DuctedCrawl means ducts in a crawlspace or basement.
	DuctedCrawl
	// DuctedAttic means ducts in an unconditioned attic.
	DuctedAttic
)

// String returns the wire label for a DuctConfig.
func (d DuctConfig) String() string {
	switch d {
	case Ductless:
		return "ductless"
	case DuctedCrawl:
		return "ducted_crawl"
	case DuctedAttic:
		return "ducted_attic"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// MarshalJSON implements json.Marshaler to output DuctConfig as string.
func (d DuctConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse DuctConfig from string.
func (d *DuctConfig) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing duct config: %w", err)
	}
	switch strings.ToLower(str) {
	case "ductless":
		*d = Ductless
	case "ducted_crawl":
		*d = DuctedCrawl
	case "ducted_attic":
		*d = DuctedAttic
	default:
		return fmt.Errorf("unknown duct config: %q", str)
	}
	return nil
}

// HeatingFuel selects the heating equipment family for recommendations.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type HeatingFuel int

const (
	// FuelGas is a gas furnace.
	FuelGas HeatingFuel = iota
	// FuelHeatPump is an electric heat pump.
	FuelHeatPump
	// FuelElectric is electric resistance heat.
	FuelElectric
)

// String returns the wire label for a HeatingFuel.
func (h HeatingFuel) String() string {
	switch h {
	case FuelGas:
		return "gas"
	case FuelHeatPump:
		return "heat_pump"
	case FuelElectric:
		return "electric"
	default:
		return fmt.Sprintf("unknown(%d)", int(h))
	}
}

// MarshalJSON implements json.Marshaler to output HeatingFuel as string.
func (h HeatingFuel) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse HeatingFuel from string.
func (h *HeatingFuel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing heating fuel: %w", err)
	}
	switch strings.ToLower(str) {
	case "gas":
		*h = FuelGas
	case "heat_pump", "heatpump":
		*h = FuelHeatPump
	case "electric":
		*h = FuelElectric
	default:
		return fmt.Errorf("unknown heating fuel: %q", str)
	}
	return nil
}

// Vintage is a construction-era label used to select envelope defaults.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Vintage int

const (
	// VintageUnknown means no era was declared; resolvers assume 1980-2000.
	VintageUnknown Vintage = iota
	// VintagePre1980 is pre-energy-code construction.
	VintagePre1980
	// Vintage1980to2000 is early-code construction.
	Vintage1980to2000
	// Vintage2000to2020 is modern-code construction.
	Vintage2000to2020
	// VintageCurrentCode is current-IECC construction.
	VintageCurrentCode
)

// String returns the wire label for a Vintage.
func (v Vintage) String() string {
	switch v {
	case VintageUnknown:
		return "unknown"
	case VintagePre1980:
		return "pre-1980"
	case Vintage1980to2000:
		return "1980-2000"
	case Vintage2000to2020:
		return "2000-2020"
	case VintageCurrentCode:
		return "current-code"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// MarshalJSON implements json.Marshaler to output Vintage as string.
func (v Vintage) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Vintage from string.
func (v *Vintage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing construction vintage: %w", err)
	}
	switch strings.ToLower(str) {
	case "", "unknown":
		*v = VintageUnknown
	case "pre-1980", "pre1980":
		*v = VintagePre1980
	case "1980-2000":
		*v = Vintage1980to2000
	case "2000-2020":
		*v = Vintage2000to2020
	case "current-code", "current":
		*v = VintageCurrentCode
	default:
		return fmt.Errorf("unknown construction vintage: %q", str)
	}
	return nil
}

// FoundationType describes what the ground floor sits on.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type FoundationType int

const (
	// FoundationSlab is slab-on-grade.
	FoundationSlab FoundationType = iota
	// FoundationCrawlspace is a vented or unvented crawlspace.
	FoundationCrawlspace
	// FoundationBasement is a full or partial basement.
	FoundationBasement
	// FoundationAboveGrade means the floor is over conditioned space.
	FoundationAboveGrade
)

// String returns the wire label for a FoundationType.
func (f FoundationType) String() string {
	switch f {
	case FoundationSlab:
		return "slab"
	case FoundationCrawlspace:
		return "crawlspace"
	case FoundationBasement:
		return "basement"
	case FoundationAboveGrade:
		return "above_grade"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// MarshalJSON implements json.Marshaler to output FoundationType as string.
func (f FoundationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse FoundationType from string.
func (f *FoundationType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing foundation type: %w", err)
	}
	switch strings.ToLower(str) {
	case "slab":
		*f = FoundationSlab
	case "crawlspace", "crawl":
		*f = FoundationCrawlspace
	case "basement":
		*f = FoundationBasement
	case "above_grade", "above-grade":
		*f = FoundationAboveGrade
	default:
		return fmt.Errorf("unknown foundation type: %q", str)
	}
	return nil
}
