// SPDX-License-Identifier: MIT

// Package config loads the optional YAML configuration of the tspk command.
// Command line flags override values read from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspk/dataset"
	"github.com/katalvlaran/tspk/decoder"
	"github.com/katalvlaran/tspk/encoder"
	"github.com/katalvlaran/tspk/tsp"
)

// ErrInvalid wraps every validation failure of a Config.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full tool configuration.
type Config struct {
	// Name is the TSPLIB NAME written by encode and cluster.
	Name string `yaml:"name" validate:"required,printascii,max=128"`

	// Sentinel is the missing-value threshold of input matrices.
	Sentinel float64 `yaml:"sentinel" validate:"gt=0,lte=1e300"`

	// MissingToken replaces missing values in reordered output.
	MissingToken string `yaml:"missing_token" validate:"required,printascii,excludesall=0x2C"`

	// OneBased selects 1-based tour files for decode and solve.
	OneBased bool `yaml:"one_based"`

	// Workers is the number of encoder rows computed concurrently.
	Workers int `yaml:"workers" validate:"gte=1,lte=1024"`

	Solver SolverConfig `yaml:"solver"`
	Log    LogConfig    `yaml:"log"`
}

// SolverConfig tunes the in-process solver.
type SolverConfig struct {
	Restarts  int           `yaml:"restarts" validate:"gte=1"`
	Workers   int           `yaml:"workers" validate:"gte=1,lte=1024"`
	Seed      int64         `yaml:"seed"`
	MaxIters  int           `yaml:"max_iters" validate:"gte=0"`
	TimeLimit time.Duration `yaml:"time_limit" validate:"gte=0"`
	Eps       float64       `yaml:"eps" validate:"gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	so := tsp.DefaultOptions()
	return Config{
		Name:         encoder.DefaultName,
		Sentinel:     dataset.DefaultSentinel,
		MissingToken: dataset.DefaultMissingToken,
		OneBased:     false,
		Workers:      encoder.DefaultWorkers,
		Solver: SolverConfig{
			Restarts:  so.Restarts,
			Workers:   so.Workers,
			Seed:      so.Seed,
			MaxIters:  so.MaxIters,
			TimeLimit: so.TimeLimit,
			Eps:       so.Eps,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML from r over Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// DatasetOptions returns the options for dataset.Load and dataset.Write.
func (c Config) DatasetOptions() []dataset.Option {
	return []dataset.Option{
		dataset.WithSentinel(c.Sentinel),
		dataset.WithMissingToken(c.MissingToken),
	}
}

// EncoderOptions returns the options for encoder.New with k clusters.
func (c Config) EncoderOptions(k int) []encoder.Option {
	return []encoder.Option{
		encoder.WithClusters(k),
		encoder.WithWorkers(c.Workers),
		encoder.WithName(c.Name),
	}
}

// SolverOptions returns the in-process solver options.
func (c Config) SolverOptions() tsp.Options {
	o := tsp.DefaultOptions()
	o.Restarts = c.Solver.Restarts
	o.Workers = c.Solver.Workers
	o.Seed = c.Solver.Seed
	o.MaxIters = c.Solver.MaxIters
	o.TimeLimit = c.Solver.TimeLimit
	o.Eps = c.Solver.Eps
	return o
}

// TourBase returns the tour numbering convention.
func (c Config) TourBase() decoder.Base {
	if c.OneBased {
		return decoder.OneBased
	}
	return decoder.ZeroBased
}
