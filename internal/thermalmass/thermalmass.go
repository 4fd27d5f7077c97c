// Package thermalmass classifies envelope mass from construction keywords
// and derives the load damping and time-lag factors heavy construction
// earns in the CLTD methodology.
package thermalmass

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hvackit/loadcalc/internal/model"
)

// Class is the envelope mass classification.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Class int

const (
	// ClassLight is conventional frame construction (score < 2).
	ClassLight Class = iota
	// ClassMedium is mixed mass construction (score 2-3).
	ClassMedium
	// ClassHeavy is masonry/concrete construction (score >= 4).
	ClassHeavy
)

// String returns the wire label for a Class.
func (c Class) String() string {
	switch c {
	case ClassLight:
		return "light"
	case ClassMedium:
		return "medium"
	case ClassHeavy:
		return "heavy"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// MarshalJSON implements json.Marshaler to output Class as string.
func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Class from string.
func (c *Class) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing mass class: %w", err)
	}
	switch strings.ToLower(str) {
	case "light":
		*c = ClassLight
	case "medium":
		*c = ClassMedium
	case "heavy":
		*c = ClassHeavy
	default:
		return fmt.Errorf("unknown mass class: %q", str)
	}
	return nil
}

// massKeywords scores construction keywords by their thermal capacitance.
//
//nolint:gochecknoglobals // Constant lookup table
var massKeywords = map[string]int{
	"concrete": 2,
	"masonry":  2,
	"icf":      2,
	"cmu":      2,
	"stone":    2,
	"adobe":    2,
	"brick":    1,
	"tile":     1,
	"slab":     1,
	"stucco":   1,
}

// Score totals mass points across the wall, floor, and interior-mass
// construction keyword strings.
func Score(wall, floor, interior string) int {
	score := 0
	for _, desc := range []string{wall, floor, interior} {
		desc = strings.ToLower(desc)
		for keyword, points := range massKeywords {
			if strings.Contains(desc, keyword) {
				score += points
			}
		}
	}
	return score
}

// Classify maps a mass score to a Class.
func Classify(score int) Class {
	switch {
	case score >= 4:
		return ClassHeavy
	case score >= 2:
		return ClassMedium
	default:
		return ClassLight
	}
}

// CoolingFactor returns the cooling-load damping multiplier for a class.
// Heavier construction absorbs and delays solar/conduction peaks.
func CoolingFactor(c Class) float64 {
	switch c {
	case ClassMedium:
		return 0.95
	case ClassHeavy:
		return 0.90
	default:
		return 1.0
	}
}

// HeatingFactor returns the heating-load multiplier for a class. Heavy
// envelopes carry more steady-state conductive area and cold-soak mass.
func HeatingFactor(c Class) float64 {
	switch c {
	case ClassMedium:
		return 1.02
	case ClassHeavy:
		return 1.05
	default:
		return 1.0
	}
}

// roomSensitivity weights how strongly mass damping shows up per room type.
// Rooms dominated by internal gains (kitchens, baths) see less envelope
// damping benefit.
//
//nolint:gochecknoglobals // Constant lookup table
var roomSensitivity = map[model.RoomType]float64{
	model.RoomLiving:   1.0,
	model.RoomDining:   1.0,
	model.RoomBedroom:  0.9,
	model.RoomOffice:   0.9,
	model.RoomHallway:  0.8,
	model.RoomCloset:   0.8,
	model.RoomOther:    0.8,
	model.RoomUtility:  0.6,
	model.RoomKitchen:  0.5,
	model.RoomBathroom: 0.5,
}

// Sensitivity returns the room-type weight applied to mass factors.
func Sensitivity(rt model.RoomType) float64 {
	if w, ok := roomSensitivity[rt]; ok {
		return w
	}
	return 0.8
}

// RoomCoolingFactor blends the class cooling factor toward 1.0 by the
// room-type sensitivity.
func RoomCoolingFactor(c Class, rt model.RoomType) float64 {
	return 1.0 - (1.0-CoolingFactor(c))*Sensitivity(rt)
}

// RoomHeatingFactor blends the class heating factor toward 1.0 by the
// room-type sensitivity.
func RoomHeatingFactor(c Class, rt model.RoomType) float64 {
	return 1.0 + (HeatingFactor(c)-1.0)*Sensitivity(rt)
}

// TimeLagHours returns the approximate thermal lag between peak outdoor
// condition and peak indoor load. Diagnostic only; the headline load numbers
// do not depend on it.
func TimeLagHours(c Class) float64 {
	switch c {
	case ClassMedium:
		return 3
	case ClassHeavy:
		return 5
	default:
		return 1
	}
}

// PeakLoadHour shifts a design peak hour (0-23) by the class time lag.
// Diagnostic only.
func PeakLoadHour(c Class, outdoorPeakHour int) int {
	return (outdoorPeakHour + int(TimeLagHours(c))) % 24
}
