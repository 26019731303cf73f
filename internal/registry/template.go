package registry

import (
	"fmt"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/imaginarium/internal/models"
)

// Family groups synthesis methods by technique.
type Family string

// Synthesis families.
const (
	FamilySubtractive Family = "subtractive"
	FamilyFM          Family = "fm"
	FamilyPhysical    Family = "physical"
	FamilyNoise       Family = "noise"
	FamilyAdditive    Family = "additive"
	FamilyRing        Family = "ring"
	FamilyFormant     Family = "formant"
)

// Parameter sampling curves.
const (
	CurveLinear      = "linear"
	CurveExponential = "exponential"
)

// AxisCount is the fixed number of controllable parameter slots per method.
const AxisCount = 5

// ParamAxis declares one controllable parameter of a method: its bounds,
// its sampling curve, and the metadata surfaced to the audio engine.
type ParamAxis struct {
	Key     string
	Label   string
	Tooltip string
	Min     float64
	Max     float64
	Curve   string
	Default float64
}

// Validate checks an axis declaration. Exponential axes additionally need a
// strictly positive minimum, since exponential interpolation divides by it.
func (a *ParamAxis) Validate() error {
	if err := validation.ValidateStruct(a,
		validation.Field(&a.Key, validation.Required),
		validation.Field(&a.Label, validation.Required),
		validation.Field(&a.Curve, validation.Required, validation.In(CurveLinear, CurveExponential)),
	); err != nil {
		return err
	}
	if a.Min >= a.Max {
		return fmt.Errorf("axis %q: min %v must be below max %v", a.Key, a.Min, a.Max)
	}
	if a.Curve == CurveExponential && a.Min <= 0 {
		return fmt.Errorf("axis %q: exponential curve requires min > 0, got %v", a.Key, a.Min)
	}
	if a.Default < a.Min || a.Default > a.Max {
		return fmt.Errorf("axis %q: default %v outside [%v, %v]", a.Key, a.Default, a.Min, a.Max)
	}
	return nil
}

// ValueAt maps a uniform draw u in [0,1] onto the axis range, honoring the
// axis curve: linear interpolation, or exponential interpolation so
// perceptual steps stay even across wide ranges.
func (a *ParamAxis) ValueAt(u float64) float64 {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if a.Curve == CurveExponential {
		return a.Min * math.Pow(a.Max/a.Min, u)
	}
	return a.Min + u*(a.Max-a.Min)
}

// Position is the inverse of ValueAt: the normalized [0,1] position of v on
// the axis.
func (a *ParamAxis) Position(v float64) float64 {
	v = a.Clamp(v)
	if a.Curve == CurveExponential {
		return math.Log(v/a.Min) / math.Log(a.Max/a.Min)
	}
	return (v - a.Min) / (a.Max - a.Min)
}

// Clamp bounds v to the axis range.
func (a *ParamAxis) Clamp(v float64) float64 {
	if v < a.Min {
		return a.Min
	}
	if v > a.Max {
		return a.Max
	}
	return v
}

// AffinityWeights is a closed-form weighted combination over SoundSpec
// dimensions. Only the relative ordering of scores across methods matters.
type AffinityWeights struct {
	Bias       float64
	Brightness float64
	Noisiness  float64
	Warmth     float64
	Saturation float64
	Contrast   float64
	Density    float64
	Movement   float64
	Depth      float64
}

// MethodTemplate is one synthesis method's schema: its family, its five
// parameter axes, and its affinity function. Templates are built once at
// registry load and shared by reference across all candidates that use them.
type MethodTemplate struct {
	ID       string
	Name     string
	Family   Family
	Synthdef string
	Axes     []ParamAxis
	Weights  AffinityWeights
}

// Affinity scores how well this method suits the given spec. Independent of
// any sampled parameter values, so it is a per-template constant for a fixed
// spec.
func (t *MethodTemplate) Affinity(s models.SoundSpec) float64 {
	w := t.Weights
	return w.Bias +
		w.Brightness*s.Brightness +
		w.Noisiness*s.Noisiness +
		w.Warmth*s.Warmth +
		w.Saturation*s.Saturation +
		w.Contrast*s.Contrast +
		w.Density*s.Density +
		w.Movement*s.Movement +
		w.Depth*s.Depth
}

// Validate checks the whole template declaration.
func (t *MethodTemplate) Validate() error {
	if err := validation.ValidateStruct(t,
		validation.Field(&t.ID, validation.Required),
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Synthdef, validation.Required),
		validation.Field(&t.Family, validation.Required, validation.In(
			FamilySubtractive, FamilyFM, FamilyPhysical, FamilyNoise,
			FamilyAdditive, FamilyRing, FamilyFormant,
		)),
		validation.Field(&t.Axes, validation.Required, validation.Length(AxisCount, AxisCount)),
	); err != nil {
		return err
	}
	for i := range t.Axes {
		if err := t.Axes[i].Validate(); err != nil {
			return fmt.Errorf("axis %d: %w", i, err)
		}
	}
	return nil
}
