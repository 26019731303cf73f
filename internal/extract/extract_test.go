package extract

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/starford/imaginarium/internal/models"
)

func uniform(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func checker(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func assertBounded(t *testing.T, s models.SoundSpec) {
	t.Helper()
	dims := map[string]float64{
		"brightness": s.Brightness,
		"noisiness":  s.Noisiness,
		"warmth":     s.Warmth,
		"saturation": s.Saturation,
		"contrast":   s.Contrast,
		"density":    s.Density,
		"movement":   s.Movement,
		"depth":      s.Depth,
	}
	for name, v := range dims {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want finite", name, v)
		}
		if v < 0 || v > 1 {
			t.Errorf("%s = %v, want within [0,1]", name, v)
		}
	}
}

func TestExtract_TotalOnDegenerateInputs(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
	}{
		{"single black pixel", uniform(1, 1, color.Black)},
		{"single white pixel", uniform(1, 1, color.White)},
		{"uniform gray", uniform(16, 16, color.NRGBA{R: 128, G: 128, B: 128, A: 255})},
		{"fully transparent", uniform(8, 8, color.NRGBA{})},
		{"empty bounds", image.NewNRGBA(image.Rect(0, 0, 0, 0))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Extract(tc.img)
			assertBounded(t, s)
			if !s.Degenerate {
				t.Error("expected degenerate flag")
			}
		})
	}
}

func TestExtract_Brightness(t *testing.T) {
	black := Extract(uniform(8, 8, color.Black))
	white := Extract(uniform(8, 8, color.White))
	if black.Brightness > 0.01 {
		t.Errorf("black brightness = %v, want ~0", black.Brightness)
	}
	if white.Brightness < 0.99 {
		t.Errorf("white brightness = %v, want ~1", white.Brightness)
	}
}

// stripes alternates black and white vertical bands, width px each. Wide
// enough bands survive the central-difference gradient, unlike a 1px checker.
func stripes(w, h, width int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/width)%2 == 0 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func TestExtract_ContrastAndNoisiness(t *testing.T) {
	flat := Extract(uniform(32, 32, color.NRGBA{R: 90, G: 90, B: 90, A: 255}))
	busy := Extract(checker(32, 32))

	if flat.Contrast != 0 {
		t.Errorf("uniform contrast = %v, want 0", flat.Contrast)
	}
	if busy.Contrast <= flat.Contrast {
		t.Error("checkerboard should have higher contrast than uniform image")
	}
	if busy.Noisiness <= flat.Noisiness {
		t.Error("checkerboard should be noisier than uniform image")
	}
}

func TestExtract_EdgeDensityAndMovement(t *testing.T) {
	flat := Extract(uniform(32, 32, color.NRGBA{R: 90, G: 90, B: 90, A: 255}))
	edgy := Extract(stripes(32, 32, 4))

	if edgy.Density <= flat.Density {
		t.Errorf("stripes density = %v, should exceed uniform %v", edgy.Density, flat.Density)
	}
	if edgy.Movement <= flat.Movement {
		t.Errorf("stripes movement = %v, should exceed uniform %v", edgy.Movement, flat.Movement)
	}
}

func TestExtract_WarmthOrdering(t *testing.T) {
	warm := Extract(uniform(8, 8, color.NRGBA{R: 230, G: 140, B: 40, A: 255}))
	cool := Extract(uniform(8, 8, color.NRGBA{R: 40, G: 90, B: 230, A: 255}))
	if warm.Warmth <= cool.Warmth {
		t.Errorf("warmth(orange)=%v should exceed warmth(blue)=%v", warm.Warmth, cool.Warmth)
	}
}

func TestExtract_SaturationOrdering(t *testing.T) {
	vivid := Extract(uniform(8, 8, color.NRGBA{R: 255, G: 0, B: 0, A: 255}))
	gray := Extract(uniform(8, 8, color.NRGBA{R: 120, G: 120, B: 120, A: 255}))
	if vivid.Saturation <= gray.Saturation {
		t.Errorf("saturation(red)=%v should exceed saturation(gray)=%v", vivid.Saturation, gray.Saturation)
	}
}

func TestExtract_DepthPrefersSmoothImages(t *testing.T) {
	smooth := Extract(gradient(64, 16))
	sharp := Extract(checker(64, 16))
	if smooth.Depth <= sharp.Depth {
		t.Errorf("depth(gradient)=%v should exceed depth(checker)=%v", smooth.Depth, sharp.Depth)
	}
}

func gradient(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1))
			img.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestExtract_Deterministic(t *testing.T) {
	img := checker(24, 24)
	a := Extract(img)
	b := Extract(img)
	if a != b {
		t.Errorf("two extractions differ: %+v vs %+v", a, b)
	}
}
