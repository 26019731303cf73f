package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data. Used as the image
// content hash recorded in pack manifests.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Short returns a 12-character prefix of Sum, compact enough for file names.
func Short(data []byte) string {
	return Sum(data)[:12]
}
