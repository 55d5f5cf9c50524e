package grid

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazegen/internal/telemetry"
)

// Stats summarizes a completed fill.
type Stats struct {
	Rows  int
	Cells int
	Walls int
}

// WallRatio returns the fraction of emitted cells that were walls.
func (s Stats) WallRatio() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Walls) / float64(s.Cells)
}

// Filler writes square grids of independently drawn tiles.
// A Filler owns its random source and is not safe for concurrent use.
type Filler struct {
	rng    *rand.Rand
	tracer trace.Tracer
}

// NewFiller creates a filler drawing from rng.
func NewFiller(rng *rand.Rand) *Filler {
	return &Filler{
		rng:    rng,
		tracer: telemetry.Tracer("grid"),
	}
}

// NewTimeSeededFiller creates a filler seeded from now at second resolution,
// so two runs within the same second produce the same grid.
func NewTimeSeededFiller(now time.Time) *Filler {
	return NewFiller(rand.New(rand.NewSource(now.Unix())))
}

// Fill writes n rows of n tiles to w, each row terminated by a newline.
// A non-positive n writes nothing. Rows are built in a single reused buffer
// and never retained.
func (f *Filler) Fill(ctx context.Context, w io.Writer, n int) (Stats, error) {
	ctx, span := f.tracer.Start(ctx, "grid.fill")
	defer span.End()

	startTime := time.Now()
	var stats Stats

	if n > 0 {
		row := make([]byte, n+1)
		row[n] = '\n'

		for y := 0; y < n; y++ {
			if err := ctx.Err(); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return stats, err
			}

			walls := 0
			for x := 0; x < n; x++ {
				tile := TileFor(f.rng.Int())
				if tile == TileWall {
					walls++
				}
				row[x] = byte(tile.Rune())
			}

			if _, err := w.Write(row); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "write failed")
				return stats, fmt.Errorf("failed to write row %d: %w", y, err)
			}
			stats.Rows++
			stats.Cells += n
			stats.Walls += walls
		}
	}

	span.SetAttributes(
		attribute.Int("grid.dimension", n),
		attribute.Int("grid.rows", stats.Rows),
		attribute.Int("grid.walls", stats.Walls),
		attribute.Int64("grid.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return stats, nil
}
