package packstore_test

import (
	"errors"
	"testing"

	"github.com/starford/imaginarium/internal/apperr"
	"github.com/starford/imaginarium/internal/models"
	"github.com/starford/imaginarium/internal/testutil"
)

func samplePack(hash string, seed int64) *models.Pack {
	return &models.Pack{
		Manifest: models.Manifest{
			ImageHash:       hash,
			Seed:            seed,
			PipelineVersion: "1.0.0",
		},
		Generators: []models.GeneratorRecord{
			{
				Name:     "Sub Drone (bed)",
				Synthdef: "imag-sub-drone",
				CustomParams: []models.ParamField{
					{Key: "freq", Label: "Frequency", Default: 110, Min: 40, Max: 400, Curve: "exp"},
				},
				OutputTrimDB: -2.5,
				RoleTag:      "bed",
			},
		},
	}
}

func TestSaveAndGetPack(t *testing.T) {
	db := testutil.TestDB(t)

	want := samplePack("abc123", 7)
	if err := db.SavePack(want); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetPack("abc123", 7, "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if got.Manifest != want.Manifest {
		t.Errorf("manifest = %+v, want %+v", got.Manifest, want.Manifest)
	}
	if len(got.Generators) != 1 || got.Generators[0].Synthdef != "imag-sub-drone" {
		t.Errorf("generators round-trip mismatch: %+v", got.Generators)
	}
	if got.Generators[0].OutputTrimDB != -2.5 {
		t.Errorf("trim = %v, want -2.5", got.Generators[0].OutputTrimDB)
	}
}

func TestSavePack_UpsertIsIdempotent(t *testing.T) {
	db := testutil.TestDB(t)

	p := samplePack("dupe", 1)
	if err := db.SavePack(p); err != nil {
		t.Fatal(err)
	}
	if err := db.SavePack(p); err != nil {
		t.Fatalf("re-saving the same pack: %v", err)
	}

	_, total, err := db.ListPacks(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1 after upsert", total)
	}
}

func TestGetPack_NotFound(t *testing.T) {
	db := testutil.TestDB(t)
	_, err := db.GetPack("missing", 1, "1.0.0")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListPacks_Pagination(t *testing.T) {
	db := testutil.TestDB(t)
	for i := int64(0); i < 5; i++ {
		if err := db.SavePack(samplePack("img", i)); err != nil {
			t.Fatal(err)
		}
	}

	rows, total, err := db.ListPacks(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(rows) != 2 {
		t.Errorf("page size = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.Generators != 1 {
			t.Errorf("row generator count = %d, want 1", r.Generators)
		}
	}

	rows, _, err = db.ListPacks(10, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("last page size = %d, want 1", len(rows))
	}
}

func TestDeletePack(t *testing.T) {
	db := testutil.TestDB(t)
	if err := db.SavePack(samplePack("gone", 2)); err != nil {
		t.Fatal(err)
	}

	if err := db.DeletePack("gone", 2, "1.0.0"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.GetPack("gone", 2, "1.0.0"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("pack still readable after delete: %v", err)
	}
	if err := db.DeletePack("gone", 2, "1.0.0"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("double delete: want ErrNotFound, got %v", err)
	}
}
