package pipeline

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/starford/imaginarium/internal/apperr"
	"github.com/starford/imaginarium/internal/models"
	"github.com/starford/imaginarium/internal/registry"
)

const (
	// DefaultTargetRMSDB is the pack-wide loudness target.
	DefaultTargetRMSDB = -16.0

	// silenceFloorDB marks the boundary below which a measurement is
	// treated as silence and no trim is derived from it.
	silenceFloorDB = -60.0

	// trimLimitDB bounds the correction in either direction.
	trimLimitDB = 18.0
)

// Measurer reports a candidate's loudness in dBFS. The second return is
// false when no valid measurement is available.
type Measurer func(tpl *registry.MethodTemplate, c models.Candidate) (float64, bool)

// Normalize annotates each selected candidate with its measured loudness and
// an output trim toward targetDB, and re-clamps every parameter to its axis
// bounds as the last step before export.
//
// Measurements run in parallel (they are independent), but results are
// re-joined in selection order so the output sequence is deterministic
// regardless of scheduling. A silent or failed measurement yields trim 0.0:
// silence is never amplified on a guess.
func Normalize(ctx context.Context, reg *registry.Registry, selected []models.Candidate, measure Measurer, targetDB float64) ([]models.Candidate, error) {
	out := make([]models.Candidate, len(selected))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range selected {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tpl, ok := reg.Lookup(c.MethodID)
			if !ok {
				return fmt.Errorf("normalize: method %q: %w", c.MethodID, apperr.ErrNotFound)
			}
			nc := c
			for k := range nc.Params {
				nc.Params[k] = tpl.Axes[k].Clamp(nc.Params[k])
			}
			db, valid := measure(tpl, nc)
			nc.RMSDB = db
			nc.RMSValid = valid
			if valid && db > silenceFloorDB {
				nc.TrimDB = round1(clampF(targetDB-db, -trimLimitDB, trimLimitDB))
			} else {
				nc.TrimDB = 0
			}
			out[i] = nc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
