// SPDX-License-Identifier: MIT

// Package config loads the run configuration of a K-matrix computation from
// YAML and maps it onto the option sets of u3coef, matrix and vcs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sp3rlib/matrix"
	"github.com/katalvlaran/sp3rlib/u3coef"
	"github.com/katalvlaran/sp3rlib/vcs"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// validate is shared by all Config values; custom tags are registered in init.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("coefmode", validateMode)
	_ = validate.RegisterValidation("loglevel", validateLevel)
	_ = validate.RegisterValidation("finite", validateFinite)
}

func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateMode(fl validator.FieldLevel) bool {
	_, err := u3coef.ParseMode(fl.Field().String())
	return err == nil
}

func validateLevel(fl validator.FieldLevel) bool {
	var l slog.Level
	return l.UnmarshalText([]byte(fl.Field().String())) == nil
}

// Config is the top-level YAML document.
type Config struct {
	// Coefficients selects the coefficient evaluation policy.
	Coefficients CoefficientsConfig `yaml:"coefficients"`

	// Matrix holds the numeric policy of the square roots.
	Matrix MatrixConfig `yaml:"matrix"`

	// Batch bounds the concurrency of multi-irrep runs.
	Batch BatchConfig `yaml:"batch"`

	// Log configures the slog handler.
	Log LogConfig `yaml:"log"`
}

// CoefficientsConfig selects cached or direct coefficient evaluation.
type CoefficientsConfig struct {
	Mode string `yaml:"mode" validate:"required,coefmode"`
}

// MatrixConfig mirrors the matrix package options.
type MatrixConfig struct {
	Epsilon        float64 `yaml:"epsilon" validate:"finite,gte=0"`
	EigenTolerance float64 `yaml:"eigen_tolerance" validate:"finite,gt=0"`
	MaxIterations  int     `yaml:"max_iterations" validate:"gt=0"`
	StrictSymmetry bool    `yaml:"strict_symmetry"`
}

// BatchConfig sets the number of irreps processed concurrently.
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gt=0,lte=1024"`
}

// LogConfig sets the minimum log level and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"required,loglevel"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Default returns the configuration matching every package default.
func Default() Config {
	return Config{
		Coefficients: CoefficientsConfig{Mode: u3coef.DefaultMode.String()},
		Matrix: MatrixConfig{
			Epsilon:        matrix.DefaultEpsilon,
			EigenTolerance: matrix.DefaultEigenTolerance,
			MaxIterations:  matrix.DefaultMaxIterations,
		},
		Batch: BatchConfig{Workers: vcs.DefaultWorkers},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Parse decodes data over Default and validates the result. Keys absent from
// data keep their default values; unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }
