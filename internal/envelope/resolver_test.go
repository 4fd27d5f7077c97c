package envelope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvackit/loadcalc/internal/model"
)

func TestResolveNilExtraction(t *testing.T) {
	props := Resolve(context.Background(), nil, model.Vintage2000to2020)

	// Every field is populated from the era defaults and flagged.
	assert.InDelta(t, 15.0, props.WallR, 1e-9)
	assert.InDelta(t, 30.0, props.RoofR, 1e-9)
	assert.InDelta(t, 0.40, props.WindowU, 1e-9)
	assert.InDelta(t, 9.0, props.CeilingHeightFt, 1e-9)
	assert.Equal(t, "average", props.LeakageClass)
	assert.Equal(t, "wood_frame", props.WallConstruction)

	assert.Len(t, props.NeedsConfirmation, 7)
	assert.Equal(t, SourceVintage, props.Sources["wall_r"])
	assert.Equal(t, SourceVintage, props.Sources["infiltration"])
}

func TestResolvePrecedence(t *testing.T) {
	extracted := &model.ExtractedEnvelope{
		WallRValue:    &model.ConfidentValue{Value: 19, Confidence: 0.9},
		RoofRValue:    &model.ConfidentValue{Value: 38, Confidence: 0.3}, // below threshold
		WindowUFactor: &model.ConfidentValue{Value: 0.35, Confidence: 0.8},
	}

	props := Resolve(context.Background(), extracted, model.Vintage1980to2000)

	assert.InDelta(t, 19.0, props.WallR, 1e-9)
	assert.Equal(t, SourceExtracted, props.Sources["wall_r"])
	assert.NotContains(t, props.NeedsConfirmation, "wall_r")

	// Low confidence substitutes the vintage default and records it.
	assert.InDelta(t, 19.0, props.RoofR, 1e-9)
	assert.Equal(t, SourceVintage, props.Sources["roof_r"])
	assert.Contains(t, props.NeedsConfirmation, "roof_r")

	assert.InDelta(t, 0.35, props.WindowU, 1e-9)
}

func TestResolveRejectsNonPositiveValues(t *testing.T) {
	extracted := &model.ExtractedEnvelope{
		WallRValue: &model.ConfidentValue{Value: 0, Confidence: 0.95},
	}

	props := Resolve(context.Background(), extracted, model.VintageCurrentCode)

	assert.InDelta(t, 21.0, props.WallR, 1e-9)
	assert.Contains(t, props.NeedsConfirmation, "wall_r")
}

func TestResolveInfiltration(t *testing.T) {
	t.Run("BlowerDoorWins", func(t *testing.T) {
		extracted := &model.ExtractedEnvelope{
			BlowerDoor:             "3 ACH50",
			LeakageClass:           "loose",
			InfiltrationConfidence: 0.9,
		}
		props := Resolve(context.Background(), extracted, model.VintageCurrentCode)

		assert.Equal(t, "3 ACH50", props.BlowerDoor)
		assert.Empty(t, props.LeakageClass)
		assert.Equal(t, SourceExtracted, props.Sources["infiltration"])
	})

	t.Run("LeakageClassSecond", func(t *testing.T) {
		extracted := &model.ExtractedEnvelope{
			LeakageClass:           "very_tight",
			InfiltrationConfidence: 0.8,
		}
		props := Resolve(context.Background(), extracted, model.VintageCurrentCode)

		assert.Empty(t, props.BlowerDoor)
		assert.Equal(t, "very_tight", props.LeakageClass)
	})

	t.Run("LowConfidenceFallsToVintage", func(t *testing.T) {
		extracted := &model.ExtractedEnvelope{
			BlowerDoor:             "3 ACH50",
			InfiltrationConfidence: 0.2,
		}
		props := Resolve(context.Background(), extracted, model.VintageCurrentCode)

		assert.Empty(t, props.BlowerDoor)
		assert.Equal(t, "tight", props.LeakageClass)
		assert.Contains(t, props.NeedsConfirmation, "infiltration")
	})
}

func TestResolveConstructionFallthrough(t *testing.T) {
	extracted := &model.ExtractedEnvelope{
		WallConstruction: "icf",
	}
	props := Resolve(context.Background(), extracted, model.Vintage2000to2020)

	// Roof and floor inherit the wall system when unspecified.
	assert.Equal(t, "icf", props.WallConstruction)
	assert.Equal(t, "icf", props.RoofConstruction)
	assert.Equal(t, "icf", props.FloorConstruction)
}

func TestUnknownVintageUsesFallbackSource(t *testing.T) {
	props := Resolve(context.Background(), nil, model.VintageUnknown)

	// Unknown era resolves through the 1980-2000 stock but records the
	// weaker provenance.
	assert.InDelta(t, 11.0, props.WallR, 1e-9)
	assert.Equal(t, SourceFallback, props.Sources["wall_r"])
}

func TestDefaultsForVintage(t *testing.T) {
	pre := DefaultsForVintage(model.VintagePre1980)
	current := DefaultsForVintage(model.VintageCurrentCode)

	require.Less(t, pre.WallR, current.WallR)
	require.Greater(t, pre.WindowU, current.WindowU)
	assert.Equal(t, "loose", pre.LeakageClass)
	assert.Equal(t, "tight", current.LeakageClass)

	assert.Equal(t, DefaultsForVintage(model.Vintage1980to2000), DefaultsForVintage(model.VintageUnknown))
}
