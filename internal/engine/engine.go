package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/config"
	"github.com/hvackit/loadcalc/internal/envelope"
	"github.com/hvackit/loadcalc/internal/foundation"
	"github.com/hvackit/loadcalc/internal/infiltration"
	"github.com/hvackit/loadcalc/internal/logging"
	"github.com/hvackit/loadcalc/internal/model"
	"github.com/hvackit/loadcalc/internal/sizing"
	"github.com/hvackit/loadcalc/internal/thermalmass"
	"github.com/hvackit/loadcalc/internal/validate"
)

// Engine runs the load calculation. It holds only immutable collaborators;
// Calculate itself is pure given its inputs, so one Engine is safe for
// concurrent use.
type Engine struct {
	tables   *Tables
	provider climate.Provider
	cfg      *config.Config
}

// New creates an Engine with the given climate provider and configuration.
// Nil tables fall back to the built-in lookup data.
func New(provider climate.Provider, cfg *config.Config, tables *Tables) (*Engine, error) {
	if provider == nil {
		return nil, errors.New("engine requires a climate provider")
	}
	if cfg == nil {
		return nil, errors.New("engine requires a configuration")
	}
	if tables == nil {
		tables = DefaultTables()
	}

	return &Engine{
		tables:   tables,
		provider: provider,
		cfg:      cfg,
	}, nil
}

// Calculate runs the full Manual J calculation for one building: climate
// resolution, envelope resolution, per-room loads, aggregation, equipment
// sizing, and validation. Invalid input aborts; partial or low-confidence
// data never does.
//
//nolint:funlen // The calculation pipeline reads best straight through.
func (e *Engine) Calculate(ctx context.Context, building *model.Building) (*BuildingLoadResult, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if building == nil {
		return nil, errors.New("building cannot be nil")
	}
	if err := building.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("component", "engine").
		Str("operation", "calculate").
		Str("location", building.Location).
		Int("rooms", len(building.Rooms)).
		Msg("starting load calculation")

	record, err := e.provider.Lookup(ctx, building.Location)
	if err != nil {
		return nil, fmt.Errorf("resolving climate data for %q: %w", building.Location, err)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	props := envelope.Resolve(ctx, building.Options.Envelope, building.Options.Vintage)

	mass := thermalmass.Classify(thermalmass.Score(
		props.WallConstruction, props.FloorConstruction, ""))

	rc := e.buildContext(ctx, building, record, props, mass)

	zones := make([]RoomLoadResult, 0, len(building.Rooms))
	for i := range building.Rooms {
		zones = append(zones, calculateRoom(&building.Rooms[i], rc))
	}

	params := e.designParameters(building, record, mass)

	heating, sensible, latent := aggregate(zones, &params)

	result := &BuildingLoadResult{
		RunID:              ulid.Make().String(),
		GeneratedAt:        time.Now().UTC(),
		HeatingTotalBTU:    int(math.Round(heating)),
		CoolingSensibleBTU: int(math.Round(sensible)),
		CoolingLatentBTU:   int(math.Round(latent)),
		Zones:              zones,
		Design:             params,
		Climate:            record,
		Envelope:           props,
		Infiltration:       rc.infiltrationResult,
		Foundation:         rc.foundationLoads,
		NeedsConfirmation:  props.NeedsConfirmation,
	}
	// The published total is always the sum of the published components.
	result.CoolingTotalBTU = result.CoolingSensibleBTU + result.CoolingLatentBTU

	result.Equipment = sizing.Recommend(
		float64(result.CoolingTotalBTU), building.TotalAreaSqFt, building.Options.HeatingFuel)

	result.Validation = validate.Run(ctx, validationInput(building, result))

	log.Info().
		Str("component", "engine").
		Str("operation", "calculate").
		Str("run_id", result.RunID).
		Str("climate_zone", record.Zone).
		Int("heating_btu", result.HeatingTotalBTU).
		Int("cooling_btu", result.CoolingTotalBTU).
		Bool("is_valid", result.Validation.IsValid).
		Dur("duration", time.Since(start)).
		Msg("load calculation complete")

	return result, nil
}

// buildContext derives the building-level state every room calculation
// shares: infiltration rate, foundation allocation, humidity ratios, and the
// configured post-processing factors.
func (e *Engine) buildContext(
	ctx context.Context,
	building *model.Building,
	record climate.Record,
	props envelope.Properties,
	mass thermalmass.Class,
) *roomContext {
	log := logging.FromContext(ctx)

	rc := &roomContext{
		climate:  record,
		env:      props,
		tables:   e.tables,
		mass:     mass,
		bridging: bridgingFor(props.WallConstruction),

		indoorHeatingF: e.cfg.Design.IndoorHeatingF,
		indoorCoolingF: e.cfg.Design.IndoorCoolingF,

		topFloor:           building.TopFloor(),
		includeVentilation: building.Options.IncludeVentilation,

		aboveGradeFloor: building.Options.Foundation == model.FoundationAboveGrade,

		cornerHeating:       e.cfg.Factors.CornerHeating,
		cornerCooling:       e.cfg.Factors.CornerCooling,
		lowConfidencePad:    e.cfg.Factors.LowConfidence,
		interiorHeatingCut:  e.cfg.Factors.InteriorHeating,
		heatingInfiltration: e.cfg.Factors.HeatingInfiltration,
	}

	rc.outdoorW = infiltration.HumidityRatio(record.CoolingDesignTempF, record.SummerRH)
	rc.indoorW = infiltration.HumidityRatio(e.cfg.Design.IndoorCoolingF, e.cfg.Design.IndoorRH)

	volume := building.ParsedAreaSqFt() * props.CeilingHeightFt

	infil := e.resolveInfiltration(ctx, building, record, props, volume)
	rc.infiltrationResult = infil
	if volume > 0 {
		rc.achNatural = infil.ACHNatural
	}

	rc.foundationLoads, rc.foundationHeatingPerSqFt, rc.foundationCoolingPerSqFt =
		e.foundationAllocation(building, record, props, rc)

	log.Debug().
		Str("component", "engine").
		Str("mass_class", mass.String()).
		Float64("ach_natural", rc.achNatural).
		Str("infiltration_method", string(infil.Method)).
		Msg("building context resolved")

	return rc
}

// resolveInfiltration prefers blower-door data, falling back to the leakage
// class when parsing fails. A bad blower-door string is a data-quality
// problem, never a calculation failure.
func (e *Engine) resolveInfiltration(
	ctx context.Context,
	building *model.Building,
	record climate.Record,
	props envelope.Properties,
	volumeCuFt float64,
) infiltration.Result {
	log := logging.FromContext(ctx)

	if props.BlowerDoor != "" {
		result, err := infiltration.FromBlowerDoor(
			props.BlowerDoor, volumeCuFt, record.Zone, building.Stories, infiltration.ShieldingNormal)
		if err == nil {
			return result
		}

		log.Warn().
			Str("component", "engine").
			Str("operation", "resolve_infiltration").
			Err(err).
			Str("blower_door", props.BlowerDoor).
			Msg("unparseable blower door result, falling back to leakage class")
	}

	class := props.LeakageClass
	if class == "" {
		class = "average"
	}
	return infiltration.FromLeakageClass(class, volumeCuFt, record.Zone)
}

// foundationAllocation computes the building foundation loads and spreads
// them across ground-floor room area.
func (e *Engine) foundationAllocation(
	building *model.Building,
	record climate.Record,
	props envelope.Properties,
	rc *roomContext,
) (loads foundation.Loads, heatingPerSqFt, coolingPerSqFt float64) {
	groundArea := 0.0
	for i := range building.Rooms {
		if building.Rooms[i].Floor == 1 {
			groundArea += building.Rooms[i].AreaSqFt
		}
	}
	if groundArea <= 0 {
		return foundation.Loads{}, 0, 0
	}

	// Footprint perimeter estimated from a square footprint; individual
	// room shapes do not survive aggregation to the slab edge.
	perimeter := 4.0 * math.Sqrt(groundArea)

	loads = foundation.Calculate(foundation.Input{
		Type:           building.Options.Foundation,
		Zone:           record.Zone,
		PerimeterFt:    perimeter,
		AreaSqFt:       groundArea,
		FloorR:         props.FloorR,
		HeatingDeltaTF: rc.heatingDeltaT(),
		CoolingDeltaTF: rc.coolingDeltaT(),
	})

	return loads, loads.HeatingBTU / groundArea, loads.CoolingSensibleBTU / groundArea
}

// designParameters assembles the building-level factor set.
func (e *Engine) designParameters(
	building *model.Building,
	record climate.Record,
	mass thermalmass.Class,
) DesignParameters {
	ductFactors := DuctFactors(building.Options.DuctConfig)

	areaFactor, discrepancy, _ := AreaCorrection(
		building.TotalAreaSqFt, building.ParsedAreaSqFt(), e.cfg.Factors.AreaCorrectionCap)

	return DesignParameters{
		ClimateZone:     record.Zone,
		OutdoorHeatingF: record.HeatingDesignTempF,
		OutdoorCoolingF: record.CoolingDesignTempF,
		IndoorHeatingF:  e.cfg.Design.IndoorHeatingF,
		IndoorCoolingF:  e.cfg.Design.IndoorCoolingF,

		DiversityFactor:      DiversityFactor(len(building.Rooms)),
		DuctHeatingFactor:    ductFactors.Heating,
		DuctCoolingFactor:    ductFactors.Cooling,
		AreaCorrectionFactor: areaFactor,
		AreaDiscrepancyPct:   discrepancy,

		MassClass: mass,
	}
}

// validationInput flattens a completed result for the validator.
func validationInput(building *model.Building, result *BuildingLoadResult) validate.Input {
	rooms := make([]validate.RoomCheck, 0, len(result.Zones))
	for i := range result.Zones {
		zone := &result.Zones[i]

		components := make(map[string]float64, len(zone.HeatingComponents)+len(zone.CoolingComponents))
		for k, v := range zone.HeatingComponents {
			components["heating_"+k] = v
		}
		for k, v := range zone.CoolingComponents {
			components["cooling_"+k] = v
		}

		rooms = append(rooms, validate.RoomCheck{
			Name:       zone.RoomName,
			Type:       zone.RoomType,
			AreaSqFt:   zone.AreaSqFt,
			HeatingBTU: zone.HeatingBTU,
			CoolingBTU: zone.CoolingBTU,
			Components: components,
		})
	}

	return validate.Input{
		Zone:               result.Design.ClimateZone,
		Vintage:            building.Options.Vintage,
		AreaSqFt:           building.TotalAreaSqFt,
		HeatingBTU:         float64(result.HeatingTotalBTU),
		CoolingBTU:         float64(result.CoolingTotalBTU),
		AreaDiscrepancyPct: result.Design.AreaDiscrepancyPct,
		Rooms:              rooms,
	}
}
