// Package config holds the immutable pipeline configuration.
//
// Config is a plain value: Load builds it from Default and an optional
// TOML file and validates it. No other package in this module reads a
// Config, so its fields take effect only through validation.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full set of options recognized by the pipeline (spec §6).
type Config struct {
	// NumBarrels is B, the number of regular barrels. The special
	// "frequent" barrel is always assigned id NumBarrels.
	NumBarrels int `toml:"num_barrels"`

	// FreqBarrelThreshold is the document-frequency fraction above which
	// a token is routed to the special barrel instead of a regular one.
	FreqBarrelThreshold float64 `toml:"freq_barrel_threshold"`

	// BarrelExponent is the exponent applied to a token's rank when
	// mapping it into a regular barrel.
	BarrelExponent float64 `toml:"barrel_exponent"`

	// SpillThreshold is the per-token in-memory posting budget before S5
	// Phase A spills the token's accumulator to a temp file.
	SpillThreshold int `toml:"spill_threshold"`

	// MinTokenLen is the minimum token length kept by the tokenizer.
	MinTokenLen int `toml:"min_token_len"`

	// BucketCount shards spill temp files across subdirectories so no
	// single directory accumulates one file per vocabulary token.
	BucketCount int `toml:"bucket_count"`

	// EnableStemming turns on the optional Snowball stemming pass.
	// Defaults to false: spec §3's token definition and the worked
	// examples in spec §8 are unstemmed, so artifacts built with the
	// default config are directly spec-conformant.
	EnableStemming bool `toml:"enable_stemming"`

	// OutputDir is the directory artifacts are published into.
	OutputDir string `toml:"output_dir"`
}

// Default returns the configuration spec §6 lists as defaults.
func Default() Config {
	return Config{
		NumBarrels:          16,
		FreqBarrelThreshold: 0.05,
		BarrelExponent:      0.6,
		SpillThreshold:      1024,
		MinTokenLen:         2,
		BucketCount:         128,
		EnableStemming:      false,
		OutputDir:           "index",
	}
}

// Load reads a TOML config file on top of Default, then validates it.
// A missing path is not an error; Default() alone is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects out-of-range configuration (spec §7, exit code 2).
func (c Config) Validate() error {
	switch {
	case c.NumBarrels < 1:
		return fmt.Errorf("config: num_barrels must be >= 1, got %d", c.NumBarrels)
	case c.FreqBarrelThreshold <= 0 || c.FreqBarrelThreshold > 1:
		return fmt.Errorf("config: freq_barrel_threshold must be in (0,1], got %v", c.FreqBarrelThreshold)
	case c.BarrelExponent <= 0:
		return fmt.Errorf("config: barrel_exponent must be > 0, got %v", c.BarrelExponent)
	case c.SpillThreshold < 1:
		return fmt.Errorf("config: spill_threshold must be >= 1, got %d", c.SpillThreshold)
	case c.MinTokenLen < 0:
		return fmt.Errorf("config: min_token_len must be >= 0, got %d", c.MinTokenLen)
	case c.BucketCount < 1:
		return fmt.Errorf("config: bucket_count must be >= 1, got %d", c.BucketCount)
	case c.OutputDir == "":
		return fmt.Errorf("config: output_dir must not be empty")
	}
	return nil
}
