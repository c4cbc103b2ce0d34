package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/beltex/go-smc/protocol"
	"github.com/beltex/go-smc/smc"
)

type fileConfig struct {
	Listen          string   `toml:"listen"`
	PollInterval    string   `toml:"poll_interval"`
	Unit            string   `toml:"unit"`
	PreciseSP78     bool     `toml:"precise_sp78"`
	TemperatureKeys []string `toml:"temperature_keys"`
	NumericKeys     []string `toml:"numeric_keys"`
}

type exporterConfig struct {
	Listen          string
	PollInterval    time.Duration
	Unit            smc.TemperatureUnit
	PreciseSP78     bool
	TemperatureKeys []string

	// NumericKeys are unsigned integer and flag keys exported verbatim as
	// gauges. Empty by default; the fan and temperature keys cover the rest.
	NumericKeys []string
}

func defaultExporterConfig() exporterConfig {
	return exporterConfig{
		Listen:          ":9915",
		PollInterval:    30 * time.Second,
		Unit:            smc.Celsius,
		TemperatureKeys: []string{protocol.KeyCPUDiode, protocol.KeyCPUProximity},
	}
}

func loadConfig(path string) (exporterConfig, error) {
	cfg := defaultExporterConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return exporterConfig{}, fmt.Errorf("load exporter config: %w", err)
	}

	if meta.IsDefined("listen") {
		addr := strings.TrimSpace(raw.Listen)
		if addr != "" {
			cfg.Listen = addr
		}
	}

	if meta.IsDefined("poll_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.PollInterval))
		if err != nil {
			return exporterConfig{}, fmt.Errorf("parse poll_interval: %w", err)
		}
		if d <= 0 {
			return exporterConfig{}, fmt.Errorf("poll_interval must be positive, got %v", d)
		}
		cfg.PollInterval = d
	}

	if meta.IsDefined("unit") {
		unit, err := parseUnit(raw.Unit)
		if err != nil {
			return exporterConfig{}, err
		}
		cfg.Unit = unit
	}

	if meta.IsDefined("precise_sp78") {
		cfg.PreciseSP78 = raw.PreciseSP78
	}

	if meta.IsDefined("temperature_keys") {
		keys, err := normalizeKeys("temperature_keys", raw.TemperatureKeys)
		if err != nil {
			return exporterConfig{}, err
		}
		if len(keys) == 0 {
			return exporterConfig{}, fmt.Errorf("temperature_keys must name at least one key")
		}
		cfg.TemperatureKeys = keys
	}

	if meta.IsDefined("numeric_keys") {
		keys, err := normalizeKeys("numeric_keys", raw.NumericKeys)
		if err != nil {
			return exporterConfig{}, err
		}
		cfg.NumericKeys = keys
	}

	return cfg, nil
}

func parseUnit(s string) (smc.TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return smc.Celsius, nil
	case "fahrenheit", "f":
		return smc.Fahrenheit, nil
	case "kelvin", "k":
		return smc.Kelvin, nil
	default:
		return smc.Celsius, fmt.Errorf("unknown temperature unit %q", s)
	}
}

func normalizeKeys(field string, keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))

	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if len(key) != 4 {
			return nil, fmt.Errorf("%s entry %q must be exactly 4 characters", field, key)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}

	return out, nil
}
