package packfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/imaginarium/internal/models"
)

// FS implements Store backed by a local output directory.
type FS struct {
	root string // absolute path to the pack output directory
}

// NewFS creates a new FS store rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("packfile: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("packfile: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("packfile: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// FileName derives the canonical manifest file name for a pack. Stable for
// a given (image, seed), so regeneration overwrites rather than piling up.
func FileName(imageHash string, seed int64) string {
	short := imageHash
	if len(short) > 12 {
		short = short[:12]
	}
	return fmt.Sprintf("pack-%s-s%d.json", short, seed)
}

// safePath resolves a file name against the output root and rejects any
// result that escapes it.
func (f *FS) safePath(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("packfile: absolute paths not allowed: %s", name)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("packfile: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("packfile: path escapes output root: %s", name)
	}
	return abs, nil
}

// Write atomically persists a pack manifest: tmp file → fsync → rename.
// A partially written pack never becomes visible under its final name.
func (f *FS) Write(p *models.Pack) (string, error) {
	name := FileName(p.Manifest.ImageHash, p.Manifest.Seed)
	abs, err := f.safePath(name)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("packfile: marshal: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(f.root, ".pack-tmp-*")
	if err != nil {
		return "", fmt.Errorf("packfile: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("packfile: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("packfile: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("packfile: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return "", fmt.Errorf("packfile: rename: %w", err)
	}
	success = true
	return abs, nil
}

// Read loads a pack manifest by file name.
func (f *FS) Read(name string) (*models.Pack, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("packfile: read %s: %w", name, err)
	}
	var p models.Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("packfile: parse %s: %w", name, err)
	}
	return &p, nil
}

// List returns the file names of every pack manifest in the output root.
func (f *FS) List() ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("packfile: list: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}
