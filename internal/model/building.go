package model

import (
	"fmt"
)

// ConfidentValue pairs an extracted numeric value with the extractor's
// confidence in it. Resolvers substitute defaults below ConfidenceThreshold
// as a pure data-flow decision, never via error control flow.
type ConfidentValue struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Trusted reports whether the value meets the engine confidence threshold.
func (c *ConfidentValue) Trusted() bool {
	return c != nil && c.Confidence >= ConfidenceThreshold
}

// ExtractedEnvelope holds AI-extracted envelope properties with per-field
// confidence. Any field may be nil; the envelope resolver always produces a
// complete property set regardless.
type ExtractedEnvelope struct {
	WallRValue      *ConfidentValue `json:"wall_r_value,omitempty"`
	RoofRValue      *ConfidentValue `json:"roof_r_value,omitempty"`
	FloorRValue     *ConfidentValue `json:"floor_r_value,omitempty"`
	WindowUFactor   *ConfidentValue `json:"window_u_factor,omitempty"`
	WindowSHGC      *ConfidentValue `json:"window_shgc,omitempty"`
	CeilingHeightFt *ConfidentValue `json:"ceiling_height_ft,omitempty"`

	// BlowerDoor is a raw blower-door result string such as "3 ACH50" or
	// "1800 CFM50", when a test report was found.
	BlowerDoor string `json:"blower_door,omitempty"`

	// LeakageClass is a construction-quality leakage label
	// (very_tight/tight/average/loose/very_loose) when no test exists.
	LeakageClass string `json:"leakage_class,omitempty"`

	// InfiltrationConfidence qualifies BlowerDoor / LeakageClass.
	InfiltrationConfidence float64 `json:"infiltration_confidence,omitempty"`

	// Construction keywords per component, used for thermal-bridging and
	// thermal-mass classification (e.g. "wood_frame", "masonry", "icf").
	WallConstruction  string `json:"wall_construction,omitempty"`
	RoofConstruction  string `json:"roof_construction,omitempty"`
	FloorConstruction string `json:"floor_construction,omitempty"`
}

// Options is the calculation configuration supplied alongside a building.
type Options struct {
	DuctConfig         DuctConfig         `json:"duct_config"`
	HeatingFuel        HeatingFuel        `json:"heating_fuel"`
	Vintage            Vintage            `json:"construction_vintage,omitempty"`
	Foundation         FoundationType     `json:"foundation_type"`
	IncludeVentilation bool               `json:"include_ventilation"`
	Envelope           *ExtractedEnvelope `json:"envelope,omitempty"`
}

// Building is the validated extraction output consumed by the engine.
type Building struct {
	// Location is the climate lookup key, typically a postal code.
	Location string `json:"location"`

	// TotalAreaSqFt is the declared conditioned area of the building. The
	// aggregator compares it against the parsed room total.
	TotalAreaSqFt float64 `json:"total_area"`

	// Stories is the above-grade story count.
	Stories int `json:"stories"`

	// Rooms is the ordered room list from the extractor.
	Rooms []Room `json:"rooms"`

	// Options is the calculation configuration.
	Options Options `json:"config"`
}

// Validate applies the hard-failure input rules: a building with no rooms,
// a non-positive declared area, or any structurally invalid room aborts the
// calculation before any load math runs.
func (b *Building) Validate() error {
	if b.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if b.TotalAreaSqFt <= 0 {
		return fmt.Errorf("%w: total area must be > 0, got %.1f", ErrValidation, b.TotalAreaSqFt)
	}
	if b.Stories < 1 {
		return fmt.Errorf("%w: story count must be >= 1, got %d", ErrValidation, b.Stories)
	}
	if len(b.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room is required", ErrValidation)
	}
	for i := range b.Rooms {
		if err := b.Rooms[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParsedAreaSqFt returns the sum of all room areas.
func (b *Building) ParsedAreaSqFt() float64 {
	var total float64
	for i := range b.Rooms {
		total += b.Rooms[i].AreaSqFt
	}
	return total
}

// TopFloor returns the highest floor number present in the room list.
func (b *Building) TopFloor() int {
	top := 1
	for i := range b.Rooms {
		if b.Rooms[i].Floor > top {
			top = b.Rooms[i].Floor
		}
	}
	return top
}
