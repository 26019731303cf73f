// Package testutil provides shared test helpers: temporary pack databases
// and synthetic test images.
package testutil

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/starford/imaginarium/internal/packstore"
)

// TestDB creates a temporary SQLite pack database that is automatically
// cleaned up.
func TestDB(t *testing.T) *packstore.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "imaginarium-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := packstore.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// UniformImage returns a w×h image filled with a single color.
func UniformImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// CheckerImage returns a w×h black/white checkerboard, a cheap stand-in for
// a high-contrast, busy image.
func CheckerImage(w, h int) image.Image {
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

// GradientImage returns a w×h horizontal luminance ramp, a smooth
// low-detail image.
func GradientImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / max(w-1, 1))
			img.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}
