// SPDX-License-Identifier: MIT

package vcs

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sp3rlib/matrix"
)

// Option configures GenerateKMatrices.
type Option func(*options)

type options struct {
	logger *slog.Logger
	matrix []matrix.Option
	strict bool
}

// WithLogger sets the logger used for per-subspace Debug records.
// nil restores slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.Default()
		}
		o.logger = l
	}
}

// WithMatrixOptions sets the numeric policy of the square roots.
// Later calls append to earlier ones.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrix = append(o.matrix, opts...) }
}

// WithStrictSymmetry makes an S matrix whose relative asymmetry exceeds the
// matrix epsilon fail with ErrAsymmetric instead of being logged at Warn.
func WithStrictSymmetry() Option {
	return func(o *options) { o.strict = true }
}

func gatherOptions(user ...Option) options {
	o := options{logger: slog.Default()}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// BatchOption configures GenerateAll.
type BatchOption func(*batchOptions)

// DefaultWorkers is the number of irreps processed concurrently by GenerateAll.
const DefaultWorkers = 4

type batchOptions struct {
	workers        int
	logger         *slog.Logger
	generate       []Option
	tracerProvider trace.TracerProvider
}

// WithWorkers bounds the number of concurrently processed irreps.
// Panics when n <= 0.
func WithWorkers(n int) BatchOption {
	if n <= 0 {
		panic("vcs: WithWorkers: n must be > 0")
	}

	return func(o *batchOptions) { o.workers = n }
}

// WithBatchLogger sets the logger of the batch driver; it is also handed to
// every GenerateKMatrices call. nil restores slog.Default().
func WithBatchLogger(l *slog.Logger) BatchOption {
	return func(o *batchOptions) {
		if l == nil {
			l = slog.Default()
		}
		o.logger = l
	}
}

// WithGenerateOptions forwards opts to every GenerateKMatrices call.
func WithGenerateOptions(opts ...Option) BatchOption {
	return func(o *batchOptions) { o.generate = append(o.generate, opts...) }
}

// WithTracerProvider sets the provider of the per-irrep spans.
// nil restores the global provider.
func WithTracerProvider(tp trace.TracerProvider) BatchOption {
	return func(o *batchOptions) {
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
		o.tracerProvider = tp
	}
}

func gatherBatchOptions(user ...BatchOption) batchOptions {
	o := batchOptions{
		workers:        DefaultWorkers,
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
