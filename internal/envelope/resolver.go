package envelope

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hvackit/loadcalc/internal/logging"
	"github.com/hvackit/loadcalc/internal/model"
)

// Source records where a resolved field's value came from.
//
//nolint:recvcheck // MarshalJSON uses value receiver; no unmarshal needed.
type Source int

const (
	// SourceExtracted means the extracted value met the confidence threshold.
	SourceExtracted Source = iota
	// SourceVintage means the construction-era default was substituted.
	SourceVintage
	// SourceFallback means the hard-coded conservative default was used.
	SourceFallback
)

// String returns the wire label for a Source.
func (s Source) String() string {
	switch s {
	case SourceExtracted:
		return "extracted"
	case SourceVintage:
		return "vintage_default"
	case SourceFallback:
		return "conservative_default"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MarshalJSON implements json.Marshaler to output Source as string.
func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Properties is the complete, authoritative envelope property set used by
// the load calculation. The resolver always returns every field populated.
type Properties struct {
	WallR           float64 `json:"wall_r"`
	RoofR           float64 `json:"roof_r"`
	FloorR          float64 `json:"floor_r"`
	WindowU         float64 `json:"window_u"`
	WindowSHGC      float64 `json:"window_shgc"`
	CeilingHeightFt float64 `json:"ceiling_height_ft"`

	// BlowerDoor is the raw blower-door string when one was extracted with
	// sufficient confidence; empty otherwise.
	BlowerDoor string `json:"blower_door,omitempty"`

	// LeakageClass is the resolved construction-quality leakage label, used
	// when BlowerDoor is empty.
	LeakageClass string `json:"leakage_class"`

	// Construction keywords per component.
	WallConstruction  string `json:"wall_construction"`
	RoofConstruction  string `json:"roof_construction"`
	FloorConstruction string `json:"floor_construction"`

	// Sources maps field name to where its value came from.
	Sources map[string]Source `json:"sources"`

	// NeedsConfirmation lists fields whose extracted value was missing or
	// below the confidence threshold and was therefore substituted. The
	// calculation proceeds regardless; these are surfaced for review.
	NeedsConfirmation []string `json:"needs_confirmation,omitempty"`
}

// Resolve merges extracted envelope properties with vintage defaults into a
// complete property set. Extraction never blocks resolution: every field
// falls back through extracted (confidence >= threshold) -> vintage default,
// recording each substitution.
func Resolve(ctx context.Context, extracted *model.ExtractedEnvelope, vintage model.Vintage) Properties {
	log := logging.FromContext(ctx)
	defaults := DefaultsForVintage(vintage)

	source := SourceVintage
	if _, known := vintageDefaults[vintage]; !known {
		source = SourceFallback
	}

	props := Properties{
		Sources: make(map[string]Source, 8),
	}

	props.WallR = resolveField(&props, "wall_r", wallR(extracted), defaults.WallR, source)
	props.RoofR = resolveField(&props, "roof_r", roofR(extracted), defaults.RoofR, source)
	props.FloorR = resolveField(&props, "floor_r", floorR(extracted), defaults.FloorR, source)
	props.WindowU = resolveField(&props, "window_u", windowU(extracted), defaults.WindowU, source)
	props.WindowSHGC = resolveField(&props, "window_shgc", windowSHGC(extracted), defaults.WindowSHGC, source)
	props.CeilingHeightFt = resolveField(
		&props, "ceiling_height", ceilingHeight(extracted), defaults.CeilingHeightFt, source)

	resolveInfiltration(&props, extracted, defaults, source)
	resolveConstruction(&props, extracted, defaults)

	if len(props.NeedsConfirmation) > 0 {
		log.Debug().
			Str("component", "envelope").
			Str("vintage", vintage.String()).
			Strs("needs_confirmation", props.NeedsConfirmation).
			Msg("substituted envelope defaults for low-confidence fields")
	}

	return props
}

// resolveField applies the precedence chain for one numeric field.
func resolveField(
	props *Properties,
	name string,
	extracted *model.ConfidentValue,
	defaultValue float64,
	defaultSource Source,
) float64 {
	if extracted.Trusted() && extracted.Value > 0 {
		props.Sources[name] = SourceExtracted
		return extracted.Value
	}

	props.Sources[name] = defaultSource
	props.NeedsConfirmation = append(props.NeedsConfirmation, name)
	return defaultValue
}

// resolveInfiltration picks blower-door data over the leakage class, with the
// vintage class as the substitute for low-confidence or missing data.
func resolveInfiltration(
	props *Properties,
	extracted *model.ExtractedEnvelope,
	defaults Defaults,
	defaultSource Source,
) {
	if extracted != nil && extracted.BlowerDoor != "" &&
		extracted.InfiltrationConfidence >= model.ConfidenceThreshold {
		props.BlowerDoor = extracted.BlowerDoor
		props.Sources["infiltration"] = SourceExtracted
		return
	}

	if extracted != nil && extracted.LeakageClass != "" &&
		extracted.InfiltrationConfidence >= model.ConfidenceThreshold {
		props.LeakageClass = extracted.LeakageClass
		props.Sources["infiltration"] = SourceExtracted
		return
	}

	props.LeakageClass = defaults.LeakageClass
	props.Sources["infiltration"] = defaultSource
	props.NeedsConfirmation = append(props.NeedsConfirmation, "infiltration")
}

// resolveConstruction passes through extracted construction keywords, filling
// gaps from the vintage default structural system.
func resolveConstruction(props *Properties, extracted *model.ExtractedEnvelope, defaults Defaults) {
	wall, roof, floor := "", "", ""
	if extracted != nil {
		wall, roof, floor = extracted.WallConstruction, extracted.RoofConstruction, extracted.FloorConstruction
	}

	if wall == "" {
		wall = defaults.WallConstruction
	}
	if roof == "" {
		roof = wall
	}
	if floor == "" {
		floor = wall
	}

	props.WallConstruction = wall
	props.RoofConstruction = roof
	props.FloorConstruction = floor
}

// Nil-safe field accessors so Resolve accepts a nil extraction wholesale.

func wallR(e *model.ExtractedEnvelope) *model.ConfidentValue {
	if e == nil {
		return nil
	}
	return e.WallRValue
}

func roofR(e *model.ExtractedEnvelope) *model.ConfidentValue {
	if e == nil {
		return nil
	}
	return e.RoofRValue
}

func floorR(e *model.ExtractedEnvelope) *model.ConfidentValue {
	if e == nil {
		return nil
	}
	return e.FloorRValue
}

func windowU(e *model.ExtractedEnvelope) *model.ConfidentValue {
	if e == nil {
		return nil
	}
	return e.WindowUFactor
}

func windowSHGC(e *model.ExtractedEnvelope) *model.ConfidentValue {
	if e == nil {
		return nil
	}
	return e.WindowSHGC
}

func ceilingHeight(e *model.ExtractedEnvelope) *model.ConfidentValue {
	if e == nil {
		return nil
	}
	return e.CeilingHeightFt
}
