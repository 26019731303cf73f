package packfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/imaginarium/internal/models"
)

func samplePack(hash string, seed int64) *models.Pack {
	return &models.Pack{
		Manifest: models.Manifest{
			ImageHash:       hash,
			Seed:            seed,
			PipelineVersion: "1.0.0",
		},
		Generators: []models.GeneratorRecord{
			{Name: "Noise Wash (texture)", Synthdef: "imag-noise-wash", RoleTag: "texture"},
		},
	}
}

func TestFileName(t *testing.T) {
	long := strings.Repeat("ab", 32)
	got := FileName(long, 9)
	if got != "pack-abababababab-s9.json" {
		t.Errorf("FileName = %q", got)
	}
	if got := FileName("short", -3); got != "pack-short-s-3.json" {
		t.Errorf("FileName = %q", got)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	want := samplePack("cafebabe", 4)
	path, err := fs.Write(want)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != FileName("cafebabe", 4) {
		t.Errorf("written as %q", filepath.Base(path))
	}

	got, err := fs.Read(filepath.Base(path))
	if err != nil {
		t.Fatal(err)
	}
	if got.Manifest != want.Manifest {
		t.Errorf("manifest = %+v, want %+v", got.Manifest, want.Manifest)
	}
	if len(got.Generators) != 1 || got.Generators[0].Synthdef != "imag-noise-wash" {
		t.Errorf("generators mismatch: %+v", got.Generators)
	}
}

func TestWrite_OverwritesSamePack(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := fs.Write(samplePack("same", 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Write(samplePack("same", 1)); err != nil {
		t.Fatal(err)
	}

	names, err := fs.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 {
		t.Errorf("List = %v, want a single file", names)
	}
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Write(samplePack("tmpcheck", 1)); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".pack-tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestRead_RejectsEscapingPaths(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"../outside.json", "/etc/passwd", "a/../../b.json"} {
		if _, err := fs.Read(name); err == nil {
			t.Errorf("Read(%q) should be rejected", name)
		}
	}
}

func TestNewFS_RequiresExistingDirectory(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("missing root should fail")
	}
}

func TestList_SkipsNonPackEntries(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Write(samplePack("listed", 1)); err != nil {
		t.Fatal(err)
	}

	names, err := fs.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != FileName("listed", 1) {
		t.Errorf("List = %v", names)
	}
}
