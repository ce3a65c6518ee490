package sand

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds the probabilities of the rule set. All values are per-tick
// chances in [0, 1].
type Params struct {
	PowderSkipChance    float64 `yaml:"powder_skip_chance"`
	SandAbsorbChance    float64 `yaml:"sand_absorb_chance"`
	SaltDissolveChance  float64 `yaml:"salt_dissolve_chance"`
	MeltChance          float64 `yaml:"melt_chance"`
	LiquidMixChance     float64 `yaml:"liquid_mix_chance"`
	AcidCorrodeChance   float64 `yaml:"acid_corrode_chance"`
	AcidConsumeChance   float64 `yaml:"acid_consume_chance"`
	LavaPowderChance    float64 `yaml:"lava_powder_chance"`
	MudSoilChance       float64 `yaml:"mud_soil_chance"`
	MudExchangeChance   float64 `yaml:"mud_exchange_chance"`
	MudEqualizeChance   float64 `yaml:"mud_equalize_chance"`
	MudEmitChance       float64 `yaml:"mud_emit_chance"`
	WaterGrassSeedRate  float64 `yaml:"water_grass_seed_chance"`
	SoilSproutChance    float64 `yaml:"soil_sprout_chance"`
	SoilAbsorbChance    float64 `yaml:"soil_absorb_chance"`
	SoilHalveChance     float64 `yaml:"soil_halve_chance"`
	GrassTipChance      float64 `yaml:"grass_tip_chance"`
	GrassDieChance      float64 `yaml:"grass_die_chance"`
	BloomChance         float64 `yaml:"bloom_chance"`
	TipWitherChance     float64 `yaml:"tip_wither_chance"`
	WaterGrassRotChance float64 `yaml:"water_grass_rot_chance"`
	SteamDecayChance    float64 `yaml:"steam_decay_chance"`
	SteamCoolChance     float64 `yaml:"steam_cool_chance"`
	FireSpreadChance    float64 `yaml:"fire_spread_chance"`
	FireSmotherChance   float64 `yaml:"fire_smother_chance"`
	CloneStampChance    float64 `yaml:"clone_stamp_chance"`
	CloneSpreadChance   float64 `yaml:"clone_spread_chance"`
	HeatNoiseChance     float64 `yaml:"heat_noise_chance"`
}

// DefaultParams returns the canonical rule set.
func DefaultParams() Params {
	return Params{
		PowderSkipChance:    0.10,
		SandAbsorbChance:    0.01,
		SaltDissolveChance:  0.05,
		MeltChance:          0.05,
		LiquidMixChance:     0.10,
		AcidCorrodeChance:   0.03,
		AcidConsumeChance:   0.30,
		LavaPowderChance:    0.10,
		MudSoilChance:       0.02,
		MudExchangeChance:   0.15,
		MudEqualizeChance:   0.30,
		MudEmitChance:       0.10,
		WaterGrassSeedRate:  0.03,
		SoilSproutChance:    0.01,
		SoilAbsorbChance:    0.055,
		SoilHalveChance:     0.01,
		GrassTipChance:      0.25,
		GrassDieChance:      0.20,
		BloomChance:         0.001,
		TipWitherChance:     0.10,
		WaterGrassRotChance: 0.01,
		SteamDecayChance:    0.005,
		SteamCoolChance:     0.50,
		FireSpreadChance:    0.10,
		FireSmotherChance:   0.05,
		CloneStampChance:    0.10,
		CloneSpreadChance:   0.20,
		HeatNoiseChance:     0.05,
	}
}

type paramField struct {
	key   string
	label string
	group string
	ptr   func(*Params) *float64
}

var paramFields = []paramField{
	{"powder_skip_chance", "Powder skip", "Granular", func(p *Params) *float64 { return &p.PowderSkipChance }},
	{"sand_absorb_chance", "Sand absorb", "Granular", func(p *Params) *float64 { return &p.SandAbsorbChance }},
	{"salt_dissolve_chance", "Salt dissolve", "Granular", func(p *Params) *float64 { return &p.SaltDissolveChance }},
	{"melt_chance", "Melt", "Granular", func(p *Params) *float64 { return &p.MeltChance }},
	{"liquid_mix_chance", "Liquid mix", "Liquids", func(p *Params) *float64 { return &p.LiquidMixChance }},
	{"acid_corrode_chance", "Acid corrode", "Liquids", func(p *Params) *float64 { return &p.AcidCorrodeChance }},
	{"acid_consume_chance", "Acid consume", "Liquids", func(p *Params) *float64 { return &p.AcidConsumeChance }},
	{"lava_powder_chance", "Lava powder motion", "Liquids", func(p *Params) *float64 { return &p.LavaPowderChance }},
	{"mud_soil_chance", "Mud to soil", "Earth", func(p *Params) *float64 { return &p.MudSoilChance }},
	{"mud_exchange_chance", "Mud exchange", "Earth", func(p *Params) *float64 { return &p.MudExchangeChance }},
	{"mud_equalize_chance", "Mud equalize", "Earth", func(p *Params) *float64 { return &p.MudEqualizeChance }},
	{"mud_emit_chance", "Mud emit", "Earth", func(p *Params) *float64 { return &p.MudEmitChance }},
	{"water_grass_seed_chance", "Water grass seed", "Earth", func(p *Params) *float64 { return &p.WaterGrassSeedRate }},
	{"soil_sprout_chance", "Soil sprout", "Earth", func(p *Params) *float64 { return &p.SoilSproutChance }},
	{"soil_absorb_chance", "Soil absorb", "Earth", func(p *Params) *float64 { return &p.SoilAbsorbChance }},
	{"soil_halve_chance", "Soil halve", "Earth", func(p *Params) *float64 { return &p.SoilHalveChance }},
	{"grass_tip_chance", "Grass tip", "Plants", func(p *Params) *float64 { return &p.GrassTipChance }},
	{"grass_die_chance", "Grass die", "Plants", func(p *Params) *float64 { return &p.GrassDieChance }},
	{"bloom_chance", "Bloom", "Plants", func(p *Params) *float64 { return &p.BloomChance }},
	{"tip_wither_chance", "Tip wither", "Plants", func(p *Params) *float64 { return &p.TipWitherChance }},
	{"water_grass_rot_chance", "Water grass rot", "Plants", func(p *Params) *float64 { return &p.WaterGrassRotChance }},
	{"steam_decay_chance", "Steam decay", "Gas & Fire", func(p *Params) *float64 { return &p.SteamDecayChance }},
	{"steam_cool_chance", "Steam cool", "Gas & Fire", func(p *Params) *float64 { return &p.SteamCoolChance }},
	{"fire_spread_chance", "Fire spread", "Gas & Fire", func(p *Params) *float64 { return &p.FireSpreadChance }},
	{"fire_smother_chance", "Fire smother", "Gas & Fire", func(p *Params) *float64 { return &p.FireSmotherChance }},
	{"clone_stamp_chance", "Clone stamp", "Clone & Heat", func(p *Params) *float64 { return &p.CloneStampChance }},
	{"clone_spread_chance", "Clone spread", "Clone & Heat", func(p *Params) *float64 { return &p.CloneSpreadChance }},
	{"heat_noise_chance", "Heat noise", "Clone & Heat", func(p *Params) *float64 { return &p.HeatNoiseChance }},
}

func lookupParam(key string) (paramField, bool) {
	for _, f := range paramFields {
		if f.key == key {
			return f, true
		}
	}
	return paramField{}, false
}

// Set assigns the probability named key, clamped into [0, 1]. It reports
// false for unknown keys.
func (p *Params) Set(key string, value float64) bool {
	f, ok := lookupParam(key)
	if !ok {
		return false
	}
	*f.ptr(p) = clamp01(value)
	return true
}

// Get returns the probability named key.
func (p *Params) Get(key string) (float64, bool) {
	f, ok := lookupParam(key)
	if !ok {
		return 0, false
	}
	return *f.ptr(p), true
}

// LoadParams overlays the YAML document at path onto p. Keys absent from the
// file keep their current values.
func LoadParams(path string, p *Params) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read params: %w", err)
	}
	next := *p
	if err := yaml.Unmarshal(b, &next); err != nil {
		return fmt.Errorf("parse params %s: %w", path, err)
	}
	for _, f := range paramFields {
		v := f.ptr(&next)
		*v = clamp01(*v)
	}
	*p = next
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
