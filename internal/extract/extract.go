// Package extract computes the SoundSpec feature vector from a decoded image.
//
// Extraction is a pure function of pixel data: the image is read once, each
// dimension is computed by an independent sub-routine, and every output is
// clamped to [0,1]. Degenerate inputs (single pixel, uniform color, fully
// transparent) still yield defined values and are flagged, never rejected.
package extract

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/starford/imaginarium/internal/models"
)

// Normalization references. Each maps the raw measurement range observed on
// typical photographic input onto [0,1]; extreme input saturates at the clamp.
const (
	contrastRef = 0.5  // max possible luminance stddev (binary image)
	noiseRef    = 0.25 // mean neighbor delta of heavy pixel noise
	motionRef   = 0.5  // mean gradient magnitude of a hard-edged image
	edgeGate    = 0.08 // gradient magnitude counting as an edge
	detailRef   = 0.12 // local detail level of a fully sharp image
)

// Extract reads img once and returns its SoundSpec.
func Extract(img image.Image) models.SoundSpec {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return degenerateSpec()
	}

	lum := make([]float64, w*h)
	var warmthSum, satSum float64
	opaque := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a > 0 {
				opaque++
			}
			// Premultiplied components composite transparent pixels
			// onto black, which keeps every formula total.
			rf := float64(r) / 65535
			gf := float64(g) / 65535
			bf := float64(bl) / 65535
			lum[y*w+x] = 0.2126*rf + 0.7152*gf + 0.0722*bf

			c := colorful.Color{R: rf, G: gf, B: bf}
			warmthSum += pixelWarmth(c)
			_, s, _ := c.Hsv()
			satSum += s
		}
	}

	n := float64(w * h)
	spec := models.SoundSpec{
		Brightness: clamp01(stat.Mean(lum, nil)),
		Warmth:     clamp01(warmthSum / n),
		Saturation: clamp01(satSum / n),
		Contrast:   contrast(lum),
		Noisiness:  noisiness(lum, w, h),
		Depth:      depth(lum, w, h),
	}
	spec.Movement, spec.Density = motion(lum, w, h)

	if opaque == 0 || w*h < 2 || spec.Contrast == 0 {
		spec.Degenerate = true
	}
	return spec
}

// degenerateSpec is the defined limit vector for an empty pixel buffer: the
// same values a uniform black image converges to.
func degenerateSpec() models.SoundSpec {
	return models.SoundSpec{Warmth: 0.5, Depth: 1, Degenerate: true}
}

// pixelWarmth maps a color onto a cool-to-warm scale using the Lab
// yellow-blue axis (with a small red-green contribution); neutral gray sits
// at 0.5.
func pixelWarmth(c colorful.Color) float64 {
	_, a, b := c.Lab()
	return clamp01(0.5 + b + 0.3*a)
}

// contrast is the population stddev of luminance against the binary-image
// reference range.
func contrast(lum []float64) float64 {
	if len(lum) < 2 {
		return 0
	}
	return clamp01(stat.PopStdDev(lum, nil) / contrastRef)
}

// noisiness is the mean absolute luminance delta between horizontal
// neighbors, a cheap high-frequency energy proxy.
func noisiness(lum []float64, w, h int) float64 {
	if w < 2 {
		return 0
	}
	var sum float64
	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			sum += math.Abs(lum[y*w+x+1] - lum[y*w+x])
		}
	}
	return clamp01(sum / float64((w-1)*h) / noiseRef)
}

// motion returns the movement and density dimensions from one pass over the
// central-difference gradient field: movement is the mean magnitude, density
// the fraction of pixels whose magnitude clears the edge gate.
func motion(lum []float64, w, h int) (movement, density float64) {
	if w < 3 || h < 3 {
		return 0, 0
	}
	var sum float64
	edges := 0
	count := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := (lum[y*w+x+1] - lum[y*w+x-1]) / 2
			gy := (lum[(y+1)*w+x] - lum[(y-1)*w+x]) / 2
			m := math.Hypot(gx, gy)
			sum += m
			if m > edgeGate {
				edges++
			}
			count++
		}
	}
	movement = clamp01(sum / float64(count) / motionRef)
	density = clamp01(float64(edges) / float64(count))
	return movement, density
}

// depth is a defocus proxy: how little detail survives a 3x3 box blur.
// Smooth, out-of-focus imagery scores high; a uniform image is the limit
// case and scores 1.
func depth(lum []float64, w, h int) float64 {
	if w < 3 || h < 3 {
		return 1
	}
	var sum float64
	count := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var box float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					box += lum[(y+dy)*w+x+dx]
				}
			}
			box /= 9
			sum += math.Abs(lum[y*w+x] - box)
			count++
		}
	}
	return clamp01(1 - sum/float64(count)/detailRef)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
