package engine

import (
	"math"
	"strings"

	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/envelope"
	"github.com/hvackit/loadcalc/internal/foundation"
	"github.com/hvackit/loadcalc/internal/infiltration"
	"github.com/hvackit/loadcalc/internal/model"
	"github.com/hvackit/loadcalc/internal/thermalmass"
)

// Airflow sizing constants.
const (
	// supplyDeltaTF is the design supply-air temperature split used to
	// translate sensible load into required airflow.
	supplyDeltaTF = 20.0

	// ductDesignFPM is the target velocity for round supply ducts.
	ductDesignFPM = 600.0

	// minDuctIn is the smallest duct diameter recommended.
	minDuctIn = 4

	// assumedDoorAreaSqFt is subtracted from net wall area for rooms that
	// plausibly hold an exterior door.
	assumedDoorAreaSqFt = 20.0
)

// bridgingFactors holds the thermal-bridging multipliers per component for
// one structural system. Heating conduction only; the CLTD tables already
// embed transient envelope behavior on the cooling side.
type bridgingFactors struct {
	wall  float64
	roof  float64
	floor float64
}

// bridgingByConstruction maps structural-system keywords to their factors.
// Steel framing bridges hard; wood and masonry only modestly.
//
//nolint:gochecknoglobals // Constant lookup table
var bridgingByConstruction = map[string]bridgingFactors{
	"wood":     {wall: 1.04, roof: 1.02, floor: 1.06},
	"steel":    {wall: 1.15, roof: 1.10, floor: 1.20},
	"masonry":  {wall: 1.08, roof: 1.02, floor: 1.12},
	"concrete": {wall: 1.08, roof: 1.02, floor: 1.12},
	"icf":      {wall: 1.02, roof: 1.02, floor: 1.02},
}

// bridgingFor matches the wall-construction keyword string to its factors,
// defaulting to wood frame.
func bridgingFor(construction string) bridgingFactors {
	desc := strings.ToLower(construction)
	for keyword, factors := range bridgingByConstruction {
		if strings.Contains(desc, keyword) {
			return factors
		}
	}
	return bridgingByConstruction["wood"]
}

// roomContext is the building-level state shared by every room calculation
// in one run.
type roomContext struct {
	climate  climate.Record
	env      envelope.Properties
	tables   *Tables
	mass     thermalmass.Class
	bridging bridgingFactors

	indoorHeatingF float64
	indoorCoolingF float64

	// achNatural is the building natural air-change rate; each room's
	// infiltration share scales with its volume.
	achNatural float64

	// infiltrationResult and foundationLoads are the building-level
	// figures echoed into the final result.
	infiltrationResult infiltration.Result
	foundationLoads    foundation.Loads

	// outdoorW / indoorW are humidity ratios for infiltration latent load.
	outdoorW float64
	indoorW  float64

	topFloor           int
	includeVentilation bool

	// Foundation allocations (per ft² of ground-floor room area).
	foundationHeatingPerSqFt float64
	foundationCoolingPerSqFt float64

	// aboveGradeFloor means floor conduction is carried here instead of
	// the ground-coupled foundation model.
	aboveGradeFloor bool

	// Post-processing multipliers from config.
	cornerHeating       float64
	cornerCooling       float64
	lowConfidencePad    float64
	interiorHeatingCut  float64
	heatingInfiltration float64
}

// deltaT pairs for the run.
func (rc *roomContext) heatingDeltaT() float64 {
	d := rc.indoorHeatingF - rc.climate.HeatingDesignTempF
	if d < 0 {
		return 0
	}
	return d
}

func (rc *roomContext) coolingDeltaT() float64 {
	d := rc.climate.CoolingDesignTempF - rc.indoorCoolingF
	if d < 0 {
		return 0
	}
	return d
}

// calculateRoom computes the full load breakdown for one room. The room is
// read-only; every adjustment lands on the result.
//
//nolint:funlen // The component sequence reads best straight through.
func calculateRoom(room *model.Room, rc *roomContext) RoomLoadResult {
	result := RoomLoadResult{
		RoomName:          room.Name,
		RoomType:          room.Type,
		AreaSqFt:          room.AreaSqFt,
		Floor:             room.Floor,
		Confidence:        room.Confidence,
		MassClass:         rc.mass,
		HeatingComponents: make(ComponentLoads, 8),
		CoolingComponents: make(ComponentLoads, 12),
		AppliedFactors:    make(map[string]FactorPair, 5),
	}

	geom := roomGeometry(room, rc)

	uWall := safeU(rc.env.WallR)
	uRoof := safeU(rc.env.RoofR)
	uFloor := safeU(rc.env.FloorR)

	dtHeat := rc.heatingDeltaT()
	dtCool := rc.coolingDeltaT()

	// Wall conduction.
	if geom.netWallArea > 0 {
		cltd := rc.tables.WallCLTDAt(
			rc.mass, room.Orientation, DesignHour, rc.climate.CoolingDesignTempF, rc.indoorCoolingF)
		result.CoolingComponents[ComponentWallConduction] = uWall * geom.netWallArea * cltd
		result.HeatingComponents[ComponentWallConduction] = uWall * geom.netWallArea * dtHeat * rc.bridging.wall
	}

	// Roof conduction, top-floor rooms only.
	if room.Floor == rc.topFloor {
		cltd := rc.tables.RoofCLTDAt(rc.mass, DesignHour, rc.climate.CoolingDesignTempF, rc.indoorCoolingF)
		result.CoolingComponents[ComponentRoofConduction] = uRoof * room.AreaSqFt * cltd
		result.HeatingComponents[ComponentRoofConduction] = uRoof * room.AreaSqFt * dtHeat * rc.bridging.roof
	}

	// Window conduction and solar gain.
	if geom.windowArea > 0 {
		result.CoolingComponents[ComponentWindowConduction] = rc.env.WindowU * geom.windowArea * dtCool
		result.HeatingComponents[ComponentWindowConduction] = rc.env.WindowU * geom.windowArea * dtHeat

		result.CoolingComponents[ComponentWindowSolar] = rc.tables.SolarGain(
			room.Orientation, room.OrientationUsable(),
			geom.windowArea, rc.env.WindowSHGC, rc.climate.LatitudeDeg,
			DesignMonth, DesignHour)
	}

	// Internal gains, cooling only.
	result.CoolingComponents[ComponentPeople] = PeopleSensibleGain(room.Type)
	result.CoolingComponents[ComponentLighting] = LightingGain(room.AreaSqFt)
	result.CoolingComponents[ComponentEquipment] = EquipmentGain(room.Type, room.AreaSqFt)

	peopleLatent := PeopleLatentGain(room.Type)
	result.CoolingComponents[ComponentPeopleLat] = peopleLatent

	// Infiltration, allocated by room volume.
	infilCFM := rc.achNatural * geom.volumeCuFt / 60.0
	result.CoolingComponents[ComponentInfiltration] = infiltration.SensibleBTU(infilCFM, dtCool)
	infilLatent := infiltration.LatentBTU(infilCFM, rc.outdoorW, rc.indoorW)
	result.CoolingComponents[ComponentInfiltrationLat] = infilLatent
	result.HeatingComponents[ComponentInfiltration] = infiltration.SensibleBTU(infilCFM*rc.heatingInfiltration, dtHeat)

	// Ventilation.
	var ventLatent float64
	if rc.includeVentilation {
		ventCFM := VentilationCFM(room.Type, room.AreaSqFt)
		result.CoolingComponents[ComponentVentilation] = VentilationSensibleBTU(ventCFM, dtCool)
		ventLatent = VentilationLatentBTU(ventCFM, rc.climate.GrainDifference)
		result.CoolingComponents[ComponentVentilationLat] = ventLatent
		result.HeatingComponents[ComponentVentilation] = VentilationSensibleBTU(ventCFM, dtHeat)
	}

	// Ground-floor foundation loss, or above-grade floor conduction.
	if room.Floor == 1 {
		switch {
		case rc.aboveGradeFloor:
			result.HeatingComponents[ComponentFoundation] = uFloor * room.AreaSqFt * dtHeat * rc.bridging.floor
			result.CoolingComponents[ComponentFoundation] = uFloor * room.AreaSqFt * dtCool * 0.3
		default:
			result.HeatingComponents[ComponentFoundation] = rc.foundationHeatingPerSqFt * room.AreaSqFt
			result.CoolingComponents[ComponentFoundation] = rc.foundationCoolingPerSqFt * room.AreaSqFt
		}
	}

	latent := infilLatent + ventLatent + peopleLatent
	sensible := result.CoolingComponents.Total() - latent

	heating := result.HeatingComponents.Total()

	// Post-processing multipliers, applied in a fixed order so the
	// reported factor set reproduces the totals exactly.
	heatFactor, coolFactor := postFactors(room, rc, &result)

	result.HeatingBTU = clampLoad(heating * heatFactor)
	result.CoolingSensibleBTU = clampLoad(sensible * coolFactor)
	result.CoolingLatentBTU = clampLoad(latent * coolFactor)
	result.CoolingBTU = result.CoolingSensibleBTU + result.CoolingLatentBTU

	result.CFMRequired = math.Round(result.CoolingSensibleBTU / (infiltration.SensibleFactor * supplyDeltaTF))
	result.DuctSizeIn = ductDiameterIn(result.CFMRequired)

	result.DataQuality = dataQualityFlags(room, geom)

	return result
}

// postFactors computes the combined heating and cooling post-processing
// multipliers and records each applied factor on the result.
func postFactors(room *model.Room, rc *roomContext, result *RoomLoadResult) (heating, cooling float64) {
	heating, cooling = 1.0, 1.0

	massHeat := thermalmass.RoomHeatingFactor(rc.mass, room.Type)
	massCool := thermalmass.RoomCoolingFactor(rc.mass, room.Type)
	heating *= massHeat
	cooling *= massCool
	result.AppliedFactors[FactorThermalMass] = FactorPair{Heating: massHeat, Cooling: massCool}

	if room.IsCorner() {
		heating *= rc.cornerHeating
		cooling *= rc.cornerCooling
		result.AppliedFactors[FactorCorner] = FactorPair{Heating: rc.cornerHeating, Cooling: rc.cornerCooling}
	}

	if exposure := exposureFactors(room); exposure.Heating != 1.0 || exposure.Cooling != 1.0 {
		heating *= exposure.Heating
		cooling *= exposure.Cooling
		result.AppliedFactors[FactorExposure] = exposure
	}

	if room.Confidence < model.LowDetectionConfidence {
		heating *= rc.lowConfidencePad
		cooling *= rc.lowConfidencePad
		result.AppliedFactors[FactorLowConfidence] = FactorPair{
			Heating: rc.lowConfidencePad, Cooling: rc.lowConfidencePad,
		}
	}

	// Interior rooms are buffered by conditioned neighbors on all sides.
	if room.ExteriorWallCount() == 0 {
		heating *= rc.interiorHeatingCut
		result.AppliedFactors[FactorInterior] = FactorPair{Heating: rc.interiorHeatingCut, Cooling: 1.0}
	}

	return heating, cooling
}

// exposureFactors maps the thermal-exposure hint to multiplier pairs.
func exposureFactors(room *model.Room) FactorPair {
	if room.Hints.ThermalExposure == nil {
		return FactorPair{Heating: 1.0, Cooling: 1.0}
	}

	switch *room.Hints.ThermalExposure {
	case model.ExposureHigh:
		return FactorPair{Heating: 1.2, Cooling: 1.25}
	case model.ExposureMedium:
		return FactorPair{Heating: 1.1, Cooling: 1.1}
	case model.ExposureLow:
		return FactorPair{Heating: 1.0, Cooling: 1.0}
	default:
		return FactorPair{Heating: 1.0, Cooling: 1.0}
	}
}

// geometry holds the derived surfaces for one room.
type geometry struct {
	exteriorWallFt float64
	netWallArea    float64
	windowArea     float64
	volumeCuFt     float64
	derivedDims    bool
}

// roomGeometry derives exterior wall length from the exterior-wall count:
// one wall exposes the longest side, two a corner pair, three most of the
// perimeter, four all of it.
func roomGeometry(room *model.Room, rc *roomContext) geometry {
	g := geometry{
		windowArea: float64(room.WindowCount) * assumedWindowAreaSqFt,
		volumeCuFt: room.AreaSqFt * rc.env.CeilingHeightFt,
	}

	if room.WidthFt <= 0 || room.LengthFt <= 0 {
		g.derivedDims = true
	}

	switch room.ExteriorWallCount() {
	case 0:
		g.exteriorWallFt = 0
	case 1:
		g.exteriorWallFt = room.LongestSideFt()
	case 2:
		g.exteriorWallFt = room.LongestSideFt() + room.ShortestSideFt()
	case 3:
		g.exteriorWallFt = 0.75 * room.PerimeterFt()
	default:
		g.exteriorWallFt = room.PerimeterFt()
	}

	if g.exteriorWallFt > 0 {
		gross := g.exteriorWallFt * rc.env.CeilingHeightFt
		g.netWallArea = gross - g.windowArea - doorArea(room)
		if g.netWallArea < 0 {
			g.netWallArea = 0
		}
	}

	return g
}

// doorArea assumes one exterior door for ground-floor rooms that typically
// hold one.
func doorArea(room *model.Room) float64 {
	if room.Floor != 1 {
		return 0
	}
	switch room.Type {
	case model.RoomLiving, model.RoomHallway, model.RoomUtility, model.RoomGarage:
		return assumedDoorAreaSqFt
	default:
		return 0
	}
}

// dataQualityFlags lists the assumptions baked into this room's numbers.
func dataQualityFlags(room *model.Room, geom geometry) []string {
	var flags []string
	if !room.OrientationUsable() {
		flags = append(flags, "orientation_averaged")
	}
	if room.Confidence < model.LowDetectionConfidence {
		flags = append(flags, "low_detection_confidence")
	}
	if geom.derivedDims {
		flags = append(flags, "dimensions_derived_from_area")
	}
	if room.Hints.ExteriorWalls == nil {
		flags = append(flags, "exterior_walls_assumed")
	}
	return flags
}

// ductDiameterIn returns the round-duct diameter (inches, rounded up to the
// next even size) that carries cfm at the design velocity.
func ductDiameterIn(cfm float64) int {
	if cfm <= 0 {
		return minDuctIn
	}

	areaSqFt := cfm / ductDesignFPM
	diameterIn := 12.0 * 2.0 * math.Sqrt(areaSqFt/math.Pi)

	size := int(math.Ceil(diameterIn))
	if size%2 != 0 {
		size++
	}
	if size < minDuctIn {
		size = minDuctIn
	}
	return size
}

// safeU converts an R-value to a U-factor, guarding divide-by-zero.
func safeU(rValue float64) float64 {
	if rValue <= 0 {
		return 1.0
	}
	return 1.0 / rValue
}

func clampLoad(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
