package app

import (
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestBindDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Sim != "sand" || cfg.Scale != 3 || cfg.TPS != 60 || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	m := cfg.ToMap(5)
	if len(m) != 1 || m["seed"] != "5" {
		t.Fatalf("expected only seed in map, got %v", m)
	}
}

func TestBindParsesFlagsAndSets(t *testing.T) {
	cfg := parse(t, "-w", "64", "-h", "48", "-scene", "forge", "-seed", "9",
		"-set", "boil=30", "-set", "smoke_chance = 0.5", "-set", "scene=pond")
	if cfg.Seed != 9 || cfg.EffectiveSeed() != 9 {
		t.Fatalf("expected seed 9, got %d", cfg.Seed)
	}
	m := cfg.ToMap(cfg.EffectiveSeed())
	want := map[string]string{
		"seed":         "9",
		"w":            "64",
		"h":            "48",
		"scene":        "pond",
		"boil":         "30",
		"smoke_chance": "0.5",
	}
	if len(m) != len(want) {
		t.Fatalf("got %v want %v", m, want)
	}
	for k, v := range want {
		if m[k] != v {
			t.Fatalf("key %s: got %q want %q", k, m[k], v)
		}
	}
	if got := cfg.Sets.String(); got != "boil=30,smoke_chance=0.5,scene=pond" {
		t.Fatalf("unexpected String() %q", got)
	}
}

func TestSetRejectsMalformedPairs(t *testing.T) {
	var l KVList
	for _, raw := range []string{"noequals", "=1", " =2"} {
		if err := l.Set(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
	if len(l) != 0 {
		t.Fatalf("malformed pairs were stored: %v", l)
	}
}

func TestEffectiveSeedNonZero(t *testing.T) {
	cfg := NewConfig()
	if cfg.EffectiveSeed() == 0 {
		t.Fatalf("time-derived seed must be non-zero")
	}
}
