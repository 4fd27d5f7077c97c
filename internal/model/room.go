package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrValidation is the sentinel wrapped by all model validation failures.
var ErrValidation = errors.New("building validation failed")

// Confidence thresholds shared across the engine.
const (
	// ConfidenceThreshold is the minimum extraction confidence at which a
	// value is trusted without substitution.
	ConfidenceThreshold = 0.6

	// LowDetectionConfidence is the room-detection confidence below which a
	// safety margin is applied to room loads.
	LowDetectionConfidence = 0.5
)

// RoomHints carries the optional per-room attributes an extractor may supply.
// Absent fields are nil; consumers fall back to geometric estimates.
type RoomHints struct {
	// ExteriorWalls is the number of exterior walls (0-4) when known.
	ExteriorWalls *int `json:"exterior_walls,omitempty"`

	// CornerRoom flags a room with two adjacent exterior walls.
	CornerRoom *bool `json:"corner_room,omitempty"`

	// ThermalExposure overrides the exposure class when the extractor can
	// judge it (top-floor corner with large glazing, etc.).
	ThermalExposure *ThermalExposure `json:"thermal_exposure,omitempty"`

	// OrientationConfidence qualifies Room.Orientation in [0,1]. Below
	// ConfidenceThreshold the engine averages solar gain over the cardinal
	// orientations instead of trusting the stated facing.
	OrientationConfidence *float64 `json:"orientation_confidence,omitempty"`
}

// Room is a single extracted room. It is immutable input to the engine:
// adjustments land on the derived load result, never back on the room.
type Room struct {
	Name        string      `json:"name"`
	Type        RoomType    `json:"room_type"`
	AreaSqFt    float64     `json:"area"`
	WidthFt     float64     `json:"width_ft"`
	LengthFt    float64     `json:"length_ft"`
	Floor       int         `json:"floor"`
	WindowCount int         `json:"window_count"`
	Orientation Orientation `json:"orientation"`
	Confidence  float64     `json:"confidence"`
	Hints       RoomHints   `json:"hints,omitempty"`
}

// Validate checks the room's hard input constraints. Zero or negative area
// is fatal; everything else degrades gracefully downstream.
func (r *Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: room name is required", ErrValidation)
	}
	if r.AreaSqFt <= 0 {
		return fmt.Errorf("%w: room %q area must be > 0, got %.1f", ErrValidation, r.Name, r.AreaSqFt)
	}
	if r.WidthFt < 0 || r.LengthFt < 0 {
		return fmt.Errorf("%w: room %q dimensions must be >= 0", ErrValidation, r.Name)
	}
	if r.Floor < 1 {
		return fmt.Errorf("%w: room %q floor must be >= 1, got %d", ErrValidation, r.Name, r.Floor)
	}
	if r.WindowCount < 0 {
		return fmt.Errorf("%w: room %q window count must be >= 0, got %d", ErrValidation, r.Name, r.WindowCount)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("%w: room %q confidence must be in [0,1], got %.2f", ErrValidation, r.Name, r.Confidence)
	}
	if walls := r.Hints.ExteriorWalls; walls != nil && (*walls < 0 || *walls > 4) {
		return fmt.Errorf("%w: room %q exterior wall count must be 0-4, got %d", ErrValidation, r.Name, *walls)
	}
	if oc := r.Hints.OrientationConfidence; oc != nil && (*oc < 0 || *oc > 1) {
		return fmt.Errorf("%w: room %q orientation confidence must be in [0,1], got %.2f",
			ErrValidation, r.Name, *oc)
	}
	return nil
}

// Dimensions returns width and length, deriving a square footprint from area
// when the extractor supplied no dimensions.
func (r *Room) Dimensions() (widthFt, lengthFt float64) {
	if r.WidthFt > 0 && r.LengthFt > 0 {
		return r.WidthFt, r.LengthFt
	}
	side := sqrtPositive(r.AreaSqFt)
	return side, side
}

// PerimeterFt returns the room perimeter from its (possibly derived) dimensions.
func (r *Room) PerimeterFt() float64 {
	w, l := r.Dimensions()
	return 2 * (w + l)
}

// LongestSideFt returns the longer of the room's two sides.
func (r *Room) LongestSideFt() float64 {
	w, l := r.Dimensions()
	if w > l {
		return w
	}
	return l
}

// ShortestSideFt returns the shorter of the room's two sides.
func (r *Room) ShortestSideFt() float64 {
	w, l := r.Dimensions()
	if w < l {
		return w
	}
	return l
}

// ExteriorWallCount returns the hinted exterior wall count, or a conservative
// single exterior wall when no hint exists. Corner-room hints imply two.
func (r *Room) ExteriorWallCount() int {
	if r.Hints.ExteriorWalls != nil {
		return *r.Hints.ExteriorWalls
	}
	if r.Hints.CornerRoom != nil && *r.Hints.CornerRoom {
		return 2
	}
	return 1
}

// IsCorner reports whether the room should receive corner multipliers,
// either from an explicit hint or an exterior wall count of exactly two.
func (r *Room) IsCorner() bool {
	if r.Hints.CornerRoom != nil {
		return *r.Hints.CornerRoom
	}
	return r.Hints.ExteriorWalls != nil && *r.Hints.ExteriorWalls == 2
}

// OrientationUsable reports whether the stated orientation is trustworthy:
// known, and not qualified by a sub-threshold orientation confidence.
func (r *Room) OrientationUsable() bool {
	if r.Orientation == OrientationUnknown {
		return false
	}
	if oc := r.Hints.OrientationConfidence; oc != nil && *oc < ConfidenceThreshold {
		return false
	}
	return true
}

// sqrtPositive is a zero-safe square root for geometry derivation.
func sqrtPositive(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
