package internal

import (
	"os"
	"path/filepath"
	"testing"

	pkgconfig "github.com/starford/imaginarium/pkg/config"
)

func TestNewDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Pipeline.PackSize != len(cfg.Pipeline.RolePlan) {
		t.Errorf("pack_size %d != role plan length %d", cfg.Pipeline.PackSize, len(cfg.Pipeline.RolePlan))
	}
}

func TestPipelineConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*PipelineConfig)
		wantErr bool
	}{
		{"defaults", func(c *PipelineConfig) {}, false},
		{"zero pack size", func(c *PipelineConfig) { c.PackSize = 0 }, true},
		{"oversized pack", func(c *PipelineConfig) { c.PackSize = 65 }, true},
		{"zero pool", func(c *PipelineConfig) { c.PoolPerMethod = 0 }, true},
		{"target too loud", func(c *PipelineConfig) { c.TargetRMSDB = -1 }, true},
		{"target too quiet", func(c *PipelineConfig) { c.TargetRMSDB = -50 }, true},
		{"plan shorter than pack", func(c *PipelineConfig) { c.RolePlan = c.RolePlan[:3] }, true},
		{"empty role entry", func(c *PipelineConfig) { c.RolePlan[2] = "" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(&cfg.Pipeline)
			err := cfg.Pipeline.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfig_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
app:
  log_level: DEBUG
pipeline:
  pack_size: 4
  pool_per_method: 12
  target_rms_db: -14
  role_plan: [bed, texture, accent, lead]
output:
  path: /tmp/packs
sqlite:
  path: /tmp/test.db
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Pipeline.PackSize != 4 || cfg.Pipeline.TargetRMSDB != -14 {
		t.Errorf("pipeline config not applied: %+v", cfg.Pipeline)
	}
	if len(cfg.Pipeline.RolePlan) != 4 || cfg.Pipeline.RolePlan[1] != "texture" {
		t.Errorf("role plan not applied: %v", cfg.Pipeline.RolePlan)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Inbox.Path != "./inbox" {
		t.Errorf("inbox path = %q, want default", cfg.Inbox.Path)
	}
}

func TestLoadConfig_MissingFileKeepsDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(filepath.Join(t.TempDir(), "absent.yaml"), cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Pipeline.PackSize != 8 {
		t.Errorf("pack size = %d, want default 8", cfg.Pipeline.PackSize)
	}
}

func TestLoadConfig_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
pipeline:
  pack_size: 2
  pool_per_method: 12
  target_rms_db: -14
  role_plan: [bed, texture, accent]
output:
  path: /tmp/packs
sqlite:
  path: /tmp/test.db
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err == nil {
		t.Fatal("mismatched pack_size and role_plan must be rejected")
	}
}
