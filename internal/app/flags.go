package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config represents the command-line parameters for a host.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Scene  string
	Sets   KVList
}

// NewConfig returns a Config populated with sensible defaults. Zero width,
// height and an empty scene defer to the simulation's own defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 3, TPS: 60, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 picks one from the clock)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial scene")
	fs.Var(&c.Sets, "set", "simulation parameter as key=value (repeatable)")
}

// EffectiveSeed resolves a zero seed to one derived from the wall clock.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// ToMap converts the configuration into the factory map understood by the
// simulation registry. Explicit -set pairs override the dedicated flags.
func (c *Config) ToMap(seed int64) map[string]string {
	m := map[string]string{"seed": strconv.FormatInt(seed, 10)}
	if c.Width > 0 {
		m["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		m["h"] = strconv.Itoa(c.Height)
	}
	if c.Scene != "" {
		m["scene"] = c.Scene
	}
	for _, kv := range c.Sets {
		m[kv.Key] = kv.Value
	}
	return m
}

// KV is one key=value pair from the command line.
type KV struct {
	Key   string
	Value string
}

// KVList implements flag.Value for repeatable key=value flags.
type KVList []KV

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, kv := range *l {
		parts[i] = kv.Key + "=" + kv.Value
	}
	return strings.Join(parts, ",")
}

func (l *KVList) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	*l = append(*l, KV{Key: key, Value: strings.TrimSpace(value)})
	return nil
}
