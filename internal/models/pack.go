// Package models defines the domain types for Imaginarium.
package models

// SoundSpec is the fixed-dimension feature vector extracted from one image.
// Every dimension is normalized to [0,1] and always finite; a SoundSpec is
// produced once per image and never mutated afterwards.
type SoundSpec struct {
	Brightness float64 `json:"brightness"`
	Noisiness  float64 `json:"noisiness"`
	Warmth     float64 `json:"warmth"`
	Saturation float64 `json:"saturation"`
	Contrast   float64 `json:"contrast"`
	Density    float64 `json:"density"`
	Movement   float64 `json:"movement"`
	Depth      float64 `json:"depth"`

	// Degenerate marks input the extractor fell back on (single pixel,
	// uniform color, fully transparent). Diagnostic only, never an error.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Candidate is one sampled instantiation of a synthesis method. Stages
// downstream of the generator annotate copies; a Candidate value is never
// mutated in place once handed to the next stage.
type Candidate struct {
	MethodID string     `json:"method_id"`
	SubSeed  uint64     `json:"sub_seed"`
	Index    int        `json:"index"`
	Params   [5]float64 `json:"params"`

	// Annotated by the selector.
	Affinity float64 `json:"affinity"`
	Role     string  `json:"role,omitempty"`

	// Annotated by the normalization stage. RMSValid is false when the
	// loudness measurement failed or the render was effectively silent.
	RMSDB    float64 `json:"rms_db"`
	RMSValid bool    `json:"rms_valid"`
	TrimDB   float64 `json:"trim_db"`
}

// ParamField is one exported parameter slot of a generator, carrying the
// axis metadata plus the sampled value as its default.
type ParamField struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Tooltip string  `json:"tooltip,omitempty"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Curve   string  `json:"curve"`
}

// GeneratorRecord is the read-only projection of one selected candidate.
// It is the unit the audio engine loads per slot and the unit persisted
// into a pack manifest.
type GeneratorRecord struct {
	Name         string       `json:"name"`
	Synthdef     string       `json:"synthdef"`
	CustomParams []ParamField `json:"custom_params"`
	OutputTrimDB float64      `json:"output_trim_db"`
	RoleTag      string       `json:"role_tag"`
}

// Manifest identifies the pipeline run a pack came from. Consumers reject
// packs whose PipelineVersion they do not understand.
type Manifest struct {
	ImageHash       string `json:"image_hash"`
	Seed            int64  `json:"seed"`
	PipelineVersion string `json:"pipeline_version"`
}

// Pack is the final ordered set of generator records from one pipeline run.
// Immutable once built; regenerating with the same image and seed yields a
// byte-identical pack.
type Pack struct {
	Manifest   Manifest          `json:"manifest"`
	Generators []GeneratorRecord `json:"generators"`
}
