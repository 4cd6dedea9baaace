package sand

import "strconv"

// Params holds the tunable thresholds and probabilities of the engine.
// Temperatures use the cell temperature scale (one unit is about 6 °C).
type Params struct {
	Ambient uint8

	Freeze      uint8
	Boil        uint8
	IceMargin   uint8
	SteamMargin uint8
	StoneMelt   uint8
	LavaMargin  uint8

	OilIgnite   uint8
	WoodIgnite  uint8
	PlantIgnite uint8
	FireSustain uint8

	FuelOilMin   uint8
	FuelOilMax   uint8
	FuelPlantMin uint8
	FuelPlantMax uint8
	FuelWoodMin  uint8
	FuelWoodMax  uint8
	FuelPlaced   uint8

	FirePlaceTemp uint8
	LavaPlaceTemp uint8
	IcePlaceTemp  uint8

	PlantGrowthChance  float64
	AcidDissolveChance float64
	AcidConsumeChance  float64
	SmokeChance        float64
}

// Config controls the sand world dimensions, seed and initial scene.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Scene string

	Params Params
}

// DefaultParams returns the standard thresholds.
func DefaultParams() Params {
	return Params{
		Ambient:     12,
		Freeze:      8,
		Boil:        25,
		IceMargin:   3,
		SteamMargin: 6,
		StoneMelt:   100,
		LavaMargin:  5,

		OilIgnite:   40,
		WoodIgnite:  48,
		PlantIgnite: 55,
		FireSustain: 30,

		FuelOilMin:   30,
		FuelOilMax:   50,
		FuelPlantMin: 40,
		FuelPlantMax: 70,
		FuelWoodMin:  80,
		FuelWoodMax:  140,
		FuelPlaced:   60,

		FirePlaceTemp: 180,
		LavaPlaceTemp: 200,
		IcePlaceTemp:  2,

		PlantGrowthChance:  0.04,
		AcidDissolveChance: 0.20,
		AcidConsumeChance:  0.40,
		SmokeChance:        0.6,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Scene:  SceneEmpty,
		Params: DefaultParams(),
	}
}

// MeltPoint is the temperature at which ice turns back into water.
func (p Params) MeltPoint() uint8 { return satAdd(p.Freeze, p.IceMargin) }

// CondensePoint is the temperature below which steam turns into water.
func (p Params) CondensePoint() uint8 { return satSub(p.Boil, p.SteamMargin) }

// SolidifyPoint is the temperature below which lava turns into stone.
func (p Params) SolidifyPoint() uint8 { return satSub(p.StoneMelt, p.LavaMargin) }

// IgnitionFloor is the minimum temperature of freshly ignited fire.
func (p Params) IgnitionFloor() uint8 { return satAdd(p.FireSustain, 30) }

// SteamPlaceTemp is the temperature of painted steam.
func (p Params) SteamPlaceTemp() uint8 { return satAdd(p.Boil, 5) }

func (p *Params) normalize() {
	orderRange(&p.FuelOilMin, &p.FuelOilMax)
	orderRange(&p.FuelPlantMin, &p.FuelPlantMax)
	orderRange(&p.FuelWoodMin, &p.FuelWoodMax)
	p.PlantGrowthChance = clampChance(p.PlantGrowthChance)
	p.AcidDissolveChance = clampChance(p.AcidDissolveChance)
	p.AcidConsumeChance = clampChance(p.AcidConsumeChance)
	p.SmokeChance = clampChance(p.SmokeChance)
}

// byteFields maps parameter keys to the temperature and fuel fields.
func (p *Params) byteFields() map[string]*uint8 {
	return map[string]*uint8{
		"ambient":         &p.Ambient,
		"freeze":          &p.Freeze,
		"boil":            &p.Boil,
		"ice_margin":      &p.IceMargin,
		"steam_margin":    &p.SteamMargin,
		"stone_melt":      &p.StoneMelt,
		"lava_margin":     &p.LavaMargin,
		"oil_ignite":      &p.OilIgnite,
		"wood_ignite":     &p.WoodIgnite,
		"plant_ignite":    &p.PlantIgnite,
		"fire_sustain":    &p.FireSustain,
		"fuel_oil_min":    &p.FuelOilMin,
		"fuel_oil_max":    &p.FuelOilMax,
		"fuel_plant_min":  &p.FuelPlantMin,
		"fuel_plant_max":  &p.FuelPlantMax,
		"fuel_wood_min":   &p.FuelWoodMin,
		"fuel_wood_max":   &p.FuelWoodMax,
		"fuel_placed":     &p.FuelPlaced,
		"fire_place_temp": &p.FirePlaceTemp,
		"lava_place_temp": &p.LavaPlaceTemp,
		"ice_place_temp":  &p.IcePlaceTemp,
	}
}

// chanceFields maps parameter keys to the probability fields.
func (p *Params) chanceFields() map[string]*float64 {
	return map[string]*float64{
		"plant_growth_chance":  &p.PlantGrowthChance,
		"acid_dissolve_chance": &p.AcidDissolveChance,
		"acid_consume_chance":  &p.AcidConsumeChance,
		"smoke_chance":         &p.SmokeChance,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if _, known := scenes[v]; known {
			c.Scene = v
		}
	}
	for key, field := range c.Params.byteFields() {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
				*field = uint8(parsed)
			}
		}
	}
	for key, field := range c.Params.chanceFields() {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*field = parsed
			}
		}
	}
	c.Params.normalize()
	return c
}

func orderRange(min, max *uint8) {
	if *max < *min {
		*max = *min
	}
}

func clampChance(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func satAdd(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 255 {
		return uint8(s)
	}
	return 255
}

func satSub(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}
