package sand

import (
	"math"
	"sort"

	"sand-ca/internal/core"
)

// Parameters returns a snapshot of the world's tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.StringParam("scene", "Scene", w.cfg.Scene),
			},
		},
		{
			Name: "Thermal",
			Params: []core.Parameter{
				core.IntParam("ambient", "Ambient", int(p.Ambient)),
				core.IntParam("freeze", "Freeze", int(p.Freeze)),
				core.IntParam("boil", "Boil", int(p.Boil)),
				core.IntParam("ice_margin", "Ice melt margin", int(p.IceMargin)),
				core.IntParam("steam_margin", "Steam condense margin", int(p.SteamMargin)),
				core.IntParam("stone_melt", "Stone melt", int(p.StoneMelt)),
				core.IntParam("lava_margin", "Lava solidify margin", int(p.LavaMargin)),
			},
			Summary: "Phase thresholds with hysteresis margins",
		},
		{
			Name: "Combustion",
			Params: []core.Parameter{
				core.IntParam("oil_ignite", "Oil ignite", int(p.OilIgnite)),
				core.IntParam("wood_ignite", "Wood ignite", int(p.WoodIgnite)),
				core.IntParam("plant_ignite", "Plant ignite", int(p.PlantIgnite)),
				core.IntParam("fire_sustain", "Fire sustain", int(p.FireSustain)),
				core.IntParam("fuel_oil_min", "Oil fuel min", int(p.FuelOilMin)),
				core.IntParam("fuel_oil_max", "Oil fuel max", int(p.FuelOilMax)),
				core.IntParam("fuel_plant_min", "Plant fuel min", int(p.FuelPlantMin)),
				core.IntParam("fuel_plant_max", "Plant fuel max", int(p.FuelPlantMax)),
				core.IntParam("fuel_wood_min", "Wood fuel min", int(p.FuelWoodMin)),
				core.IntParam("fuel_wood_max", "Wood fuel max", int(p.FuelWoodMax)),
				core.IntParam("fuel_placed", "Painted fire fuel", int(p.FuelPlaced)),
				core.FloatParam("smoke_chance", "Smoke chance", p.SmokeChance),
			},
		},
		{
			Name: "Placement",
			Params: []core.Parameter{
				core.IntParam("fire_place_temp", "Fire temperature", int(p.FirePlaceTemp)),
				core.IntParam("lava_place_temp", "Lava temperature", int(p.LavaPlaceTemp)),
				core.IntParam("ice_place_temp", "Ice temperature", int(p.IcePlaceTemp)),
			},
		},
		{
			Name: "Reactions",
			Params: []core.Parameter{
				core.FloatParam("plant_growth_chance", "Plant growth chance", p.PlantGrowthChance),
				core.FloatParam("acid_dissolve_chance", "Acid dissolve chance", p.AcidDissolveChance),
				core.FloatParam("acid_consume_chance", "Acid consume chance", p.AcidConsumeChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	fields := w.cfg.Params.byteFields()
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	controls := make([]core.ParameterControl, 0, len(keys)+4)
	for _, key := range keys {
		controls = append(controls, core.ParameterControl{
			Key:    key,
			Label:  key,
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			Max:    255,
			HasMin: true,
			HasMax: true,
		})
	}
	for _, key := range []string{"plant_growth_chance", "acid_dissolve_chance", "acid_consume_chance", "smoke_chance"} {
		controls = append(controls, core.ParameterControl{
			Key:    key,
			Label:  key,
			Type:   core.ParamTypeFloat,
			Step:   0.01,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		})
	}
	return controls
}

// SetIntParameter updates a temperature or fuel tunable. Values are clamped
// to the byte range. Returns false for unknown keys.
func (w *World) SetIntParameter(key string, value int) bool {
	field, ok := w.cfg.Params.byteFields()[key]
	if !ok {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > math.MaxUint8 {
		value = math.MaxUint8
	}
	*field = uint8(value)
	w.cfg.Params.normalize()
	return true
}

// SetFloatParameter updates a probability tunable. Values above 1 are read
// as percentages, then clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	field, ok := w.cfg.Params.chanceFields()[key]
	if !ok {
		return false
	}
	if math.IsNaN(value) {
		return false
	}
	if value > 1 {
		value /= 100
	}
	*field = clampChance(value)
	return true
}
