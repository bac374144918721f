package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

const (
	outputTable = "table"
	outputPlain = "plain"
)

type config struct {
	LogLevel zerolog.Level
	Output   string
	Probe    bool
}

func defaultConfig() config {
	return config{
		LogLevel: zerolog.WarnLevel,
		Output:   outputTable,
	}
}

type fileConfig struct {
	LogLevel string `toml:"log_level"`
	Output   string `toml:"output"`
	Probe    bool   `toml:"probe"`
}

// loadConfig reads a TOML config file on top of the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("log_level") {
		lvl, err := parseLevel(raw.LogLevel)
		if err != nil {
			return config{}, err
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("output") {
		out, err := parseOutput(raw.Output)
		if err != nil {
			return config{}, err
		}
		cfg.Output = out
	}

	if meta.IsDefined("probe") {
		cfg.Probe = raw.Probe
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	return cfg, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log_level: %w", err)
	}
	return lvl, nil
}

func parseOutput(raw string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case outputTable, outputPlain:
		return v, nil
	default:
		return "", fmt.Errorf("parse output: unknown format %q (want %s or %s)", raw, outputTable, outputPlain)
	}
}
