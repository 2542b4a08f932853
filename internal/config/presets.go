package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"tiny": {
		Count: 8,
	},
	"default": {
		Count: DefaultCount,
	},
	"large": {
		Count: 48,
		Delay: 20 * time.Millisecond,
	},
	"slow": {
		Count: 12,
		Delay: 600 * time.Millisecond,
	},
	"race": {
		Count: 32,
		Delay: 5 * time.Millisecond,
	},
}

// GetPreset returns a copy of the named preset applied over the defaults for
// algorithm, or nil if there is no such preset.
func GetPreset(algorithm, preset string) *Config {
	p, ok := Presets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if algorithm != "" {
		cfg.Algorithm = algorithm
	}
	cfg.Count = p.Count
	cfg.Delay = p.Delay
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
