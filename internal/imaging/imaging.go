// Package imaging decodes source images and derives the content hash
// recorded in pack manifests.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	// Registered decoders. The pipeline itself never touches encoded bytes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/starford/imaginarium/internal/checksum"
)

// Decode turns raw image bytes into a pixel buffer and returns the SHA-256
// content hash of the input alongside it.
func Decode(data []byte) (image.Image, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("imaging: decode: %w", err)
	}
	return img, checksum.Sum(data), nil
}

// Supported reports whether the file name carries a decodable extension.
// Used by the inbox watcher to ignore unrelated files.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}
