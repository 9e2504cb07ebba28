// SPDX-License-Identifier: MIT

package vcs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sp3rlib/u3coef"
)

// TracerName is the instrumentation scope of the batch driver spans.
const TracerName = "sp3rlib.vcs"

// GenerateAll computes the K matrices of independent irreps concurrently.
//
// Every irrep gets its own cache from newCache, so no coefficient state is
// shared between goroutines; newCache itself is called concurrently.
// Results are returned in input order. The first failure cancels the irreps
// not yet started; an irrep already running is not interrupted. The returned
// error names the failing irrep's lowest weight.
func GenerateAll(ctx context.Context, irreps []Irrep, newCache func() *u3coef.UCache, opts ...BatchOption) ([]*KMatrices, error) {
	if newCache == nil {
		return nil, ErrNilCacheFactory
	}
	o := gatherBatchOptions(opts...)
	genOpts := append([]Option{WithLogger(o.logger)}, o.generate...)

	for i, irrep := range irreps {
		if irrep == nil {
			return nil, fmt.Errorf("irrep %d: %w", i, ErrNilIrrep)
		}
	}

	tracer := o.tracerProvider.Tracer(TracerName)
	out := make([]*KMatrices, len(irreps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, irrep := range irreps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			km, err := generateTraced(gctx, tracer, irrep, newCache(), genOpts)
			if err != nil {
				return fmt.Errorf("irrep %d sigma %s: %w", i, irrep.Sigma(), err)
			}
			out[i] = km

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Error("K matrix batch failed", slog.Any("error", err))
		return nil, err
	}

	return out, nil
}

func generateTraced(ctx context.Context, tracer trace.Tracer, irrep Irrep, cache *u3coef.UCache, opts []Option) (*KMatrices, error) {
	sigma := irrep.Sigma()
	_, span := tracer.Start(ctx, "vcs.GenerateKMatrices",
		trace.WithAttributes(
			attribute.String("sigma", sigma.String()),
			attribute.Int("subspaces", irrep.Size()),
		),
	)
	defer span.End()

	start := time.Now()
	km, err := GenerateKMatrices(irrep, cache, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if cache != nil {
		span.SetAttributes(attribute.Int("coefficient_blocks", cache.Len()))
	}

	gatherOptions(opts...).logger.Info("K matrices generated",
		slog.String("sigma", sigma.String()),
		slog.Int("subspaces", km.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return km, nil
}
