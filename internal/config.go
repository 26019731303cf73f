package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Pipeline PipelineConfig    `yaml:"pipeline"`
	Inbox    InboxConfig       `yaml:"inbox"`
	Output   OutputConfig      `yaml:"output"`
	SQLite   SQLiteConfig      `yaml:"sqlite"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.SQLite.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// PipelineConfig holds the pipeline tuning knobs.
//
// RolePlan is the ordered list of target roles, one per pack slot; its
// length must equal PackSize. TargetRMSDB is the pack-wide loudness the
// normalization stage trims toward.
type PipelineConfig struct {
	PackSize      int      `yaml:"pack_size"`
	PoolPerMethod int      `yaml:"pool_per_method"`
	TargetRMSDB   float64  `yaml:"target_rms_db"`
	RolePlan      []string `yaml:"role_plan"`
}

// Validate validates the pipeline configuration.
func (c *PipelineConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.PackSize, validation.Required, validation.Min(1), validation.Max(64)),
		validation.Field(&c.PoolPerMethod, validation.Required, validation.Min(1), validation.Max(256)),
		validation.Field(&c.TargetRMSDB, validation.Required, validation.Min(-40.0), validation.Max(-3.0)),
		validation.Field(&c.RolePlan, validation.Required, validation.Each(validation.Required)),
	); err != nil {
		return err
	}
	if len(c.RolePlan) != c.PackSize {
		return fmt.Errorf("pipeline: role_plan has %d entries but pack_size is %d", len(c.RolePlan), c.PackSize)
	}
	return nil
}

// InboxConfig holds the watched image drop directory. Only required when
// watch mode is active.
type InboxConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig holds the pack manifest output directory.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Pipeline: PipelineConfig{
			PackSize:      8,
			PoolPerMethod: 24,
			TargetRMSDB:   -16.0,
			RolePlan: []string{
				"bed", "bed", "texture", "texture",
				"accent", "accent", "lead", "rhythm",
			},
		},
		Inbox: InboxConfig{
			Path: "./inbox",
		},
		Output: OutputConfig{
			Path: "./packs",
		},
		SQLite: SQLiteConfig{
			Path: "./imaginarium.db",
		},
	}
}
