// Package config loads the betwixt command configuration from YAML.
//
// A configuration file is optional; Default returns the values used without
// one, and command-line flags override whatever the file sets.
//
//	log:
//	  level: info      # debug | info | warn | error
//	  format: text     # text | json
//	transform:
//	  origin: first    # first | second
//	selftest:
//	  ceil: 100        # lengths 0..ceil-1
//	  seed: 0          # 0 derives per-case seeds from the case index only
//	  workers: 4
//	verbose: false
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/betwixt/bwt"
	"github.com/katalvlaran/betwixt/internal/ctxlog"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full command configuration.
type Config struct {
	Log       Log       `yaml:"log"`
	Transform Transform `yaml:"transform"`
	Selftest  Selftest  `yaml:"selftest"`
	Verbose   bool      `yaml:"verbose"`
}

// Log configures ctxlog.Setup.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Transform selects the origin convention shared by both directions.
type Transform struct {
	Origin string `yaml:"origin"`
}

// Selftest configures the randomised round-trip harness.
type Selftest struct {
	Ceil    int   `yaml:"ceil"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:       Log{Level: "info", Format: "text"},
		Transform: Transform{Origin: bwt.OriginFirst.String()},
		Selftest: Selftest{
			Ceil:    100,
			Seed:    0,
			Workers: runtime.GOMAXPROCS(0),
		},
	}
}

// Load reads filename on top of Default and validates the result.
func Load(ctx context.Context, filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	return Decode(file)
}

// Decode reads YAML from r on top of Default. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r, yaml.Strict())
	err := dec.Decode(&cfg)
	switch {
	case errors.Is(err, io.EOF):
		// Empty documents zero the target.
		cfg = Default()
	case err != nil:
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if _, err := ParseOrigin(c.Transform.Origin); err != nil {
		return err
	}
	if c.Selftest.Ceil < 0 {
		return fmt.Errorf("%w: selftest.ceil %d must be non-negative", ErrInvalid, c.Selftest.Ceil)
	}
	if c.Selftest.Workers < 1 {
		return fmt.Errorf("%w: selftest.workers %d must be positive", ErrInvalid, c.Selftest.Workers)
	}
	return nil
}

// ParseOrigin maps "first" and "second" to the bwt origin conventions.
func ParseOrigin(s string) (bwt.Origin, error) {
	switch s {
	case bwt.OriginFirst.String():
		return bwt.OriginFirst, nil
	case bwt.OriginSecond.String():
		return bwt.OriginSecond, nil
	default:
		return bwt.OriginFirst, fmt.Errorf("%w: transform.origin %q (want first or second)", ErrInvalid, s)
	}
}

// Origin returns the configured origin. Validate has already checked it.
func (c Config) Origin() bwt.Origin {
	o, _ := ParseOrigin(c.Transform.Origin)
	return o
}
