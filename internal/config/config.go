// Package config loads runtime settings from a .env file and GOBOLT_*
// environment variables. Variables set in the environment take precedence
// over the file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gobolt/internal/aisc"
	"github.com/alexiusacademia/gobolt/internal/evaluator"
	"github.com/alexiusacademia/gobolt/internal/loads"
)

// DefaultEnvFile is read when no other file is named
const DefaultEnvFile = ".env"

// Environment variable names
const (
	EnvBoltFu                 = "GOBOLT_BOLT_FU"
	EnvShearSafetyFactor      = "GOBOLT_SHEAR_SAFETY_FACTOR"
	EnvBearingSafetyFactor    = "GOBOLT_BEARING_SAFETY_FACTOR"
	EnvBlockShearSafetyFactor = "GOBOLT_BLOCK_SHEAR_SAFETY_FACTOR"
	EnvUbs                    = "GOBOLT_UBS"
	EnvEccentricity           = "GOBOLT_ECCENTRICITY"
	EnvIDScheme               = "GOBOLT_ID_SCHEME"
	EnvLogLevel               = "GOBOLT_LOG_LEVEL"
	EnvAddr                   = "GOBOLT_ADDR"
)

// Config holds the runtime settings
type Config struct {
	BoltFu                 float64
	ShearSafetyFactor      float64
	BearingSafetyFactor    float64
	BlockShearSafetyFactor float64
	Ubs                    float64
	Eccentricity           float64
	IDScheme               string // sequential or uuid
	LogLevel               slog.Level
	Addr                   string
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		BoltFu:                 aisc.BoltFu,
		ShearSafetyFactor:      aisc.ShearSafetyFactor,
		BearingSafetyFactor:    aisc.BearingSafetyFactor,
		BlockShearSafetyFactor: aisc.BlockShearSafetyFactor,
		Ubs:                    aisc.UbsUniform,
		Eccentricity:           aisc.DefaultEccentricity,
		IDScheme:               "sequential",
		LogLevel:               slog.LevelWarn,
		Addr:                   ":8080",
	}
}

// Load reads path (DefaultEnvFile when empty) and the process environment.
// A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultEnvFile
	}
	file, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Default(), err
		}
		file = map[string]string{}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}), nil
}

// FromLookup builds a Config from a variable lookup. Values that do not
// parse, or are not positive, keep their defaults.
func FromLookup(lookup func(string) (string, bool)) Config {
	c := Default()
	positive(lookup, EnvBoltFu, &c.BoltFu)
	positive(lookup, EnvShearSafetyFactor, &c.ShearSafetyFactor)
	positive(lookup, EnvBearingSafetyFactor, &c.BearingSafetyFactor)
	positive(lookup, EnvBlockShearSafetyFactor, &c.BlockShearSafetyFactor)
	positive(lookup, EnvUbs, &c.Ubs)
	positive(lookup, EnvEccentricity, &c.Eccentricity)

	if v, ok := lookup(EnvIDScheme); ok {
		switch s := strings.ToLower(strings.TrimSpace(v)); s {
		case "sequential", "uuid":
			c.IDScheme = s
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			c.LogLevel = level
		}
	}
	if v, ok := lookup(EnvAddr); ok && strings.TrimSpace(v) != "" {
		c.Addr = strings.TrimSpace(v)
	}
	return c
}

// Evaluator returns the design constants for an evaluator
func (c Config) Evaluator() evaluator.Config {
	return evaluator.Config{
		BoltFu:                 c.BoltFu,
		ShearSafetyFactor:      c.ShearSafetyFactor,
		BearingSafetyFactor:    c.BearingSafetyFactor,
		BlockShearSafetyFactor: c.BlockShearSafetyFactor,
		Ubs:                    c.Ubs,
		Eccentricity:           c.Eccentricity,
		DemandMode:             loads.ModeResultant,
	}
}

func positive(lookup func(string) (string, bool), key string, dst *float64) {
	v, ok := lookup(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return
	}
	*dst = f
}
