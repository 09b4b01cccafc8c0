package driver

import (
	"context"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"go.uber.org/zap"

	"github.com/xkilldash9x/humanpath/pkg/curves"
)

// Config tunes the walker's device-side behavior. The zero value walks the
// sequence verbatim at the default speed with no added noise.
type Config struct {
	// PixelsPerSecond is the pacing speed factor. <= 0 uses the default.
	PixelsPerSecond float64
	// TremorStrength scales high-frequency Gaussian jitter applied to
	// interior dispatches. 0 disables it.
	TremorStrength float64
	// DriftAmplitude scales low-frequency Perlin drift applied to interior
	// dispatches. 0 disables it.
	DriftAmplitude float64
	// Bounds, when set, clamps every dispatched coordinate to the device
	// rectangle.
	Bounds *Bounds
	// HeldButton is dispatched in the Buttons bitfield of every move,
	// enabling drag simulation.
	HeldButton MouseButton
}

// driftFrequency is the Perlin time frequency used for cursor drift.
const driftFrequency = 0.8

// Walker moves a pointer through an already-computed trajectory, one explicit
// iteration per point, abandoning the walk as soon as its context is
// cancelled. It computes nothing about the path itself; the sequence is
// consumed exactly in order.
type Walker struct {
	cfg      Config
	executor Executor
	logger   *zap.Logger
	rng      *rand.Rand
	noiseX   *perlin.Perlin
	noiseY   *perlin.Perlin
}

// NewWalker creates a walker dispatching through executor. The rng seeds the
// tremor and drift noise; pass a seeded source for reproducible runs.
func NewWalker(cfg Config, executor Executor, logger *zap.Logger, rng *rand.Rand) *Walker {
	seed := rng.Int63()
	// Standard Perlin parameters, offset seed for the Y axis.
	alpha, beta, n := 2.0, 2.0, int32(3)
	return &Walker{
		cfg:      cfg,
		executor: executor,
		logger:   logger,
		rng:      rng,
		noiseX:   perlin.NewPerlin(alpha, beta, n, seed),
		noiseY:   perlin.NewPerlin(alpha, beta, n, seed+1),
	}
}

// Walk dispatches one MouseMove per point, pacing dispatches by inter-point
// distance and the configured speed. The first and last points are dispatched
// verbatim; tremor and drift only touch interior points, so the pointer
// provably starts and ends exactly where the trajectory says.
func (w *Walker) Walk(ctx context.Context, points []curves.Point2D) error {
	if len(points) == 0 {
		return nil
	}

	timed := Schedule(points, w.cfg.PixelsPerSecond)
	buttons := ButtonsBitfield(w.cfg.HeldButton)

	var prevOffset time.Duration
	for i, tp := range timed {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if delay := tp.Offset - prevOffset; delay > 0 {
			if err := w.executor.Sleep(ctx, delay); err != nil {
				return err
			}
		}
		prevOffset = tp.Offset

		pos := tp.Point2D
		if i > 0 && i < len(timed)-1 {
			pos = w.perturb(pos, tp.Offset.Seconds())
		}
		if w.cfg.Bounds != nil {
			b := *w.cfg.Bounds
			pos = curves.Point2D{
				X: clampFloat(pos.X, b.MinX, b.MaxX),
				Y: clampFloat(pos.Y, b.MinY, b.MaxY),
			}
		}

		event := MouseEventData{
			Type:    MouseMove,
			X:       pos.X,
			Y:       pos.Y,
			Button:  ButtonNone,
			Buttons: buttons,
		}
		if err := w.executor.DispatchMouseEvent(ctx, event); err != nil {
			if ctx.Err() == nil {
				w.logger.Warn("failed to dispatch mouse move",
					zap.Int("index", i), zap.Error(err))
			}
			return err
		}
	}
	return nil
}

// perturb layers Perlin drift and Gaussian tremor onto an interior point.
func (w *Walker) perturb(p curves.Point2D, elapsed float64) curves.Point2D {
	if w.cfg.DriftAmplitude > 0 {
		p = p.Add(curves.Point2D{
			X: w.noiseX.Noise1D(elapsed*driftFrequency) * w.cfg.DriftAmplitude,
			Y: w.noiseY.Noise1D(elapsed*driftFrequency) * w.cfg.DriftAmplitude,
		})
	}
	if w.cfg.TremorStrength > 0 {
		strength := w.cfg.TremorStrength * (0.5 + w.rng.Float64())
		p = p.Add(curves.Point2D{
			X: w.rng.NormFloat64() * strength,
			Y: w.rng.NormFloat64() * strength,
		})
	}
	return p
}
