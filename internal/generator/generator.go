// Package generator turns command line arguments into a grid file on disk.
package generator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazegen/internal/grid"
	"github.com/samdwyer/mazegen/internal/telemetry"
)

// Main parses args and runs the generator. Nothing is written when the
// arguments are invalid.
func Main(ctx context.Context, args []string) error {
	cfg, err := ParseArgs(args)
	if err != nil {
		return err
	}
	return Run(ctx, cfg)
}

// Run writes a cfg.Dimension square grid to cfg.OutputPath, creating or
// truncating the file. The file is closed on every return path.
func Run(ctx context.Context, cfg Config) (err error) {
	path := cfg.OutputPath
	if path == "" {
		path = DefaultOutputPath
	}

	tracer := telemetry.Tracer("generator")
	ctx, span := tracer.Start(ctx, "generator.run", trace.WithAttributes(
		attribute.String("run.id", uuid.NewString()),
		attribute.Int("grid.dimension", cfg.Dimension),
		attribute.String("output.path", path),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if cfg.Dimension < 0 {
		log.Printf("Warning: negative dimension %d, %s will be empty", cfg.Dimension, path)
	}

	filler := newFiller(cfg.Seed)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIOFailure, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	stats, err := filler.Fill(ctx, w, cfg.Dimension)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: failed to flush %s: %w", ErrIOFailure, path, err)
	}

	span.SetAttributes(
		attribute.Int("grid.rows", stats.Rows),
		attribute.Float64("grid.wall_ratio", stats.WallRatio()),
	)
	return nil
}

// newFiller seeds from the current second unless a fixed seed is given.
func newFiller(seed int64) *grid.Filler {
	if seed == 0 {
		return grid.NewTimeSeededFiller(time.Now())
	}
	return grid.NewFiller(rand.New(rand.NewSource(seed)))
}
