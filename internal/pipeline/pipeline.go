// Package pipeline turns a decoded image and a seed into a playable
// generator pack: extract features, sample candidates, select an ensemble,
// normalize loudness, export records. Every stage is a pure function over
// immutable inputs; a run either completes or fails atomically.
package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/starford/imaginarium/internal/extract"
	"github.com/starford/imaginarium/internal/models"
	"github.com/starford/imaginarium/internal/registry"
	"github.com/starford/imaginarium/internal/synth"
)

// DefaultPoolPerMethod is how many candidates each method contributes to the
// pool when the caller does not say otherwise.
const DefaultPoolPerMethod = 24

// Options tunes one pipeline run. The zero value selects the defaults.
type Options struct {
	PoolPerMethod int
	TargetRMSDB   float64
	// Measure overrides the loudness measurement service; the offline
	// preview renderer is used when nil.
	Measure Measurer
}

func (o Options) withDefaults() Options {
	if o.PoolPerMethod <= 0 {
		o.PoolPerMethod = DefaultPoolPerMethod
	}
	if o.TargetRMSDB == 0 {
		o.TargetRMSDB = DefaultTargetRMSDB
	}
	if o.Measure == nil {
		o.Measure = func(tpl *registry.MethodTemplate, c models.Candidate) (float64, bool) {
			return synth.MeasureRMS(tpl, c.Params, c.SubSeed)
		}
	}
	return o
}

// Run executes the whole pipeline for one image. Identical (image, seed,
// plan) inputs against the same registry produce byte-identical packs.
func Run(ctx context.Context, reg *registry.Registry, img image.Image, imageHash string, seed int64, plan []string, opts Options) (*models.Pack, error) {
	o := opts.withDefaults()

	spec := extract.Extract(img)
	cands := Generate(reg, spec, seed, o.PoolPerMethod)

	selected, err := Select(reg, cands, plan)
	if err != nil {
		return nil, fmt.Errorf("pipeline: select: %w", err)
	}
	normalized, err := Normalize(ctx, reg, selected, o.Measure, o.TargetRMSDB)
	if err != nil {
		return nil, fmt.Errorf("pipeline: normalize: %w", err)
	}
	pack, err := Export(reg, normalized, imageHash, seed)
	if err != nil {
		return nil, fmt.Errorf("pipeline: export: %w", err)
	}
	return pack, nil
}
