// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/sp3rlib/matrix"
	"github.com/katalvlaran/sp3rlib/u3coef"
	"github.com/katalvlaran/sp3rlib/vcs"
)

// CacheOptions maps the coefficient section onto u3coef options.
// The configuration must have passed Validate.
func (c Config) CacheOptions(logger *slog.Logger) []u3coef.Option {
	mode, err := u3coef.ParseMode(c.Coefficients.Mode)
	if err != nil {
		mode = u3coef.DefaultMode
	}

	return []u3coef.Option{u3coef.WithMode(mode), u3coef.WithLogger(logger)}
}

// MatrixOptions maps the matrix section onto matrix options.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(c.Matrix.Epsilon),
		matrix.WithEigenTolerance(c.Matrix.EigenTolerance),
		matrix.WithMaxIterations(c.Matrix.MaxIterations),
	}
}

// VCSOptions returns the GenerateKMatrices options.
func (c Config) VCSOptions(logger *slog.Logger) []vcs.Option {
	opts := []vcs.Option{vcs.WithLogger(logger), vcs.WithMatrixOptions(c.MatrixOptions()...)}
	if c.Matrix.StrictSymmetry {
		opts = append(opts, vcs.WithStrictSymmetry())
	}

	return opts
}

// BatchOptions returns the GenerateAll options.
func (c Config) BatchOptions(logger *slog.Logger) []vcs.BatchOption {
	return []vcs.BatchOption{
		vcs.WithWorkers(c.Batch.Workers),
		vcs.WithBatchLogger(logger),
		vcs.WithGenerateOptions(c.VCSOptions(logger)...),
	}
}

// Logger builds a slog.Logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
