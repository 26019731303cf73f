package registry

// The built-in catalog. Two methods per family. Axis positions are meaningful
// to the renderer: slot 0 is the pitch-like axis, slot 1 the tone-like axis,
// slot 2 the character axis, slots 3 and 4 the envelope (attack, decay).
//
// Affinity weights are tuned so that image character visibly shifts the
// ranking: dark dense images favor drones and washes, bright contrasty ones
// favor bells and shimmer, busy textured ones favor noise and ring methods.
func catalog() []*MethodTemplate {
	return []*MethodTemplate{
		{
			ID:       "sub_drone",
			Name:     "Drone",
			Family:   FamilySubtractive,
			Synthdef: "imag-sub-drone",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Oscillator base pitch", Min: 30, Max: 400, Curve: CurveExponential, Default: 80},
				{Key: "cutoff", Label: "Cutoff", Tooltip: "Low-pass filter cutoff", Min: 80, Max: 6000, Curve: CurveExponential, Default: 800},
				{Key: "res", Label: "Resonance", Tooltip: "Filter resonance", Min: 0, Max: 0.9, Curve: CurveLinear, Default: 0.2},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.05, Max: 4, Curve: CurveExponential, Default: 1},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.5, Max: 8, Curve: CurveExponential, Default: 4},
			},
			Weights: AffinityWeights{Bias: 0.6, Brightness: -0.8, Warmth: 0.5, Depth: 0.7, Movement: -0.3},
		},
		{
			ID:       "sub_sweep",
			Name:     "Filter Sweep",
			Family:   FamilySubtractive,
			Synthdef: "imag-sub-sweep",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Oscillator base pitch", Min: 50, Max: 1200, Curve: CurveExponential, Default: 220},
				{Key: "cutoff", Label: "Cutoff", Tooltip: "Sweep target cutoff", Min: 200, Max: 10000, Curve: CurveExponential, Default: 2000},
				{Key: "res", Label: "Resonance", Tooltip: "Filter resonance", Min: 0, Max: 0.95, Curve: CurveLinear, Default: 0.5},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.01, Max: 1, Curve: CurveExponential, Default: 0.1},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.2, Max: 4, Curve: CurveExponential, Default: 1.5},
			},
			Weights: AffinityWeights{Bias: 0.4, Movement: 0.9, Contrast: 0.3, Saturation: 0.2},
		},
		{
			ID:       "fm_bell",
			Name:     "FM Bell",
			Family:   FamilyFM,
			Synthdef: "imag-fm-bell",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Carrier pitch", Min: 100, Max: 2000, Curve: CurveExponential, Default: 440},
				{Key: "ratio", Label: "Mod Ratio", Tooltip: "Modulator to carrier frequency ratio", Min: 0.5, Max: 7, Curve: CurveLinear, Default: 2},
				{Key: "index", Label: "Mod Index", Tooltip: "Modulation depth", Min: 0, Max: 10, Curve: CurveLinear, Default: 3},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.001, Max: 0.1, Curve: CurveExponential, Default: 0.005},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.3, Max: 6, Curve: CurveExponential, Default: 2},
			},
			Weights: AffinityWeights{Bias: 0.3, Brightness: 0.9, Contrast: 0.5, Noisiness: -0.4},
		},
		{
			ID:       "fm_growl",
			Name:     "FM Growl",
			Family:   FamilyFM,
			Synthdef: "imag-fm-growl",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Carrier pitch", Min: 40, Max: 500, Curve: CurveExponential, Default: 110},
				{Key: "ratio", Label: "Mod Ratio", Tooltip: "Modulator to carrier frequency ratio", Min: 0.25, Max: 3, Curve: CurveLinear, Default: 0.5},
				{Key: "index", Label: "Mod Index", Tooltip: "Modulation depth", Min: 2, Max: 14, Curve: CurveLinear, Default: 6},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.01, Max: 0.5, Curve: CurveExponential, Default: 0.05},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.5, Max: 5, Curve: CurveExponential, Default: 2},
			},
			Weights: AffinityWeights{Bias: 0.3, Brightness: -0.5, Density: 0.6, Saturation: 0.5, Depth: 0.2},
		},
		{
			ID:       "pluck_string",
			Name:     "Plucked String",
			Family:   FamilyPhysical,
			Synthdef: "imag-pluck-string",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "String pitch", Min: 60, Max: 1500, Curve: CurveExponential, Default: 220},
				{Key: "bright", Label: "Brightness", Tooltip: "Excitation brightness", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.6},
				{Key: "damp", Label: "Damping", Tooltip: "String damping", Min: 0.01, Max: 0.5, Curve: CurveExponential, Default: 0.1},
				{Key: "attack", Label: "Attack", Tooltip: "Pluck hardness", Min: 0.0005, Max: 0.02, Curve: CurveExponential, Default: 0.002},
				{Key: "decay", Label: "Decay", Tooltip: "Ring-out time", Min: 0.5, Max: 6, Curve: CurveExponential, Default: 2.5},
			},
			Weights: AffinityWeights{Bias: 0.4, Warmth: 0.7, Density: 0.4, Noisiness: -0.3, Movement: 0.2},
		},
		{
			ID:       "bowed_bar",
			Name:     "Bowed Bar",
			Family:   FamilyPhysical,
			Synthdef: "imag-bowed-bar",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Bar pitch", Min: 80, Max: 900, Curve: CurveExponential, Default: 260},
				{Key: "pressure", Label: "Pressure", Tooltip: "Bow pressure", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.5},
				{Key: "damp", Label: "Damping", Tooltip: "Bar damping", Min: 0.01, Max: 0.4, Curve: CurveExponential, Default: 0.05},
				{Key: "attack", Label: "Attack", Tooltip: "Bow onset time", Min: 0.1, Max: 3, Curve: CurveExponential, Default: 0.8},
				{Key: "decay", Label: "Decay", Tooltip: "Release time", Min: 0.5, Max: 6, Curve: CurveExponential, Default: 3},
			},
			Weights: AffinityWeights{Bias: 0.4, Depth: 0.8, Warmth: 0.3, Movement: -0.4, Brightness: -0.2},
		},
		{
			ID:       "noise_wash",
			Name:     "Noise Wash",
			Family:   FamilyNoise,
			Synthdef: "imag-noise-wash",
			Axes: []ParamAxis{
				{Key: "cutoff", Label: "Cutoff", Tooltip: "Noise color cutoff", Min: 100, Max: 12000, Curve: CurveExponential, Default: 1500},
				{Key: "body", Label: "Body", Tooltip: "Low-end body amount", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.4},
				{Key: "motion", Label: "Motion", Tooltip: "Filter motion depth", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.3},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.2, Max: 6, Curve: CurveExponential, Default: 2},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 1, Max: 10, Curve: CurveExponential, Default: 5},
			},
			Weights: AffinityWeights{Bias: 0.3, Noisiness: 1.0, Depth: 0.5, Brightness: -0.2},
		},
		{
			ID:       "dust_crackle",
			Name:     "Dust Crackle",
			Family:   FamilyNoise,
			Synthdef: "imag-dust-crackle",
			Axes: []ParamAxis{
				{Key: "density", Label: "Density", Tooltip: "Impulses per second", Min: 1, Max: 400, Curve: CurveExponential, Default: 40},
				{Key: "cutoff", Label: "Cutoff", Tooltip: "Crackle tone cutoff", Min: 500, Max: 14000, Curve: CurveExponential, Default: 4000},
				{Key: "spread", Label: "Spread", Tooltip: "Amplitude spread", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.5},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.01, Max: 1, Curve: CurveExponential, Default: 0.2},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.5, Max: 6, Curve: CurveExponential, Default: 2},
			},
			Weights: AffinityWeights{Bias: 0.2, Density: 0.9, Contrast: 0.5, Noisiness: 0.4, Warmth: -0.2},
		},
		{
			ID:       "add_organ",
			Name:     "Harmonic Organ",
			Family:   FamilyAdditive,
			Synthdef: "imag-add-organ",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Fundamental pitch", Min: 60, Max: 800, Curve: CurveExponential, Default: 160},
				{Key: "rolloff", Label: "Rolloff", Tooltip: "Partial amplitude rolloff", Min: 0.5, Max: 3, Curve: CurveLinear, Default: 1.2},
				{Key: "detune", Label: "Detune", Tooltip: "Partial detune amount", Min: 0, Max: 0.02, Curve: CurveLinear, Default: 0.003},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.05, Max: 3, Curve: CurveExponential, Default: 0.5},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.5, Max: 8, Curve: CurveExponential, Default: 3},
			},
			Weights: AffinityWeights{Bias: 0.5, Warmth: 0.8, Brightness: 0.2, Noisiness: -0.5},
		},
		{
			ID:       "partial_shimmer",
			Name:     "Partial Shimmer",
			Family:   FamilyAdditive,
			Synthdef: "imag-partial-shimmer",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Fundamental pitch", Min: 200, Max: 2500, Curve: CurveExponential, Default: 600},
				{Key: "rolloff", Label: "Rolloff", Tooltip: "Partial amplitude rolloff", Min: 0.3, Max: 2, Curve: CurveLinear, Default: 0.8},
				{Key: "drift", Label: "Drift", Tooltip: "Partial pitch drift rate", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.4},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.1, Max: 4, Curve: CurveExponential, Default: 1},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 1, Max: 9, Curve: CurveExponential, Default: 4},
			},
			Weights: AffinityWeights{Bias: 0.2, Brightness: 0.8, Movement: 0.6, Saturation: 0.3},
		},
		{
			ID:       "ring_metal",
			Name:     "Ring Metal",
			Family:   FamilyRing,
			Synthdef: "imag-ring-metal",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Carrier pitch", Min: 100, Max: 1800, Curve: CurveExponential, Default: 300},
				{Key: "ratio", Label: "Ring Ratio", Tooltip: "Ring oscillator frequency ratio", Min: 0.5, Max: 5, Curve: CurveLinear, Default: 1.7},
				{Key: "shine", Label: "Shine", Tooltip: "Upper partial emphasis", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.5},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.001, Max: 0.2, Curve: CurveExponential, Default: 0.01},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.3, Max: 5, Curve: CurveExponential, Default: 1.8},
			},
			Weights: AffinityWeights{Bias: 0.2, Contrast: 0.8, Saturation: 0.5, Warmth: -0.3},
		},
		{
			ID:       "ring_tremor",
			Name:     "Ring Tremor",
			Family:   FamilyRing,
			Synthdef: "imag-ring-tremor",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Carrier pitch", Min: 50, Max: 600, Curve: CurveExponential, Default: 140},
				{Key: "rate", Label: "Rate", Tooltip: "Tremor modulation rate", Min: 0.5, Max: 30, Curve: CurveExponential, Default: 6},
				{Key: "depth", Label: "Depth", Tooltip: "Tremor depth", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.6},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.05, Max: 2, Curve: CurveExponential, Default: 0.3},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.5, Max: 6, Curve: CurveExponential, Default: 2.5},
			},
			Weights: AffinityWeights{Bias: 0.2, Movement: 0.8, Noisiness: 0.4, Density: 0.3},
		},
		{
			ID:       "formant_voice",
			Name:     "Formant Voice",
			Family:   FamilyFormant,
			Synthdef: "imag-formant-voice",
			Axes: []ParamAxis{
				{Key: "freq", Label: "Frequency", Tooltip: "Glottal pitch", Min: 60, Max: 500, Curve: CurveExponential, Default: 140},
				{Key: "vowel", Label: "Vowel", Tooltip: "Vowel morph position", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.3},
				{Key: "breath", Label: "Breath", Tooltip: "Breath noise amount", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.2},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.05, Max: 2, Curve: CurveExponential, Default: 0.4},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 0.5, Max: 7, Curve: CurveExponential, Default: 3},
			},
			Weights: AffinityWeights{Bias: 0.3, Warmth: 0.7, Saturation: 0.5, Contrast: -0.2, Depth: 0.3},
		},
		{
			ID:       "formant_whisper",
			Name:     "Formant Whisper",
			Family:   FamilyFormant,
			Synthdef: "imag-formant-whisper",
			Axes: []ParamAxis{
				{Key: "center", Label: "Center", Tooltip: "Formant center frequency", Min: 300, Max: 4000, Curve: CurveExponential, Default: 1200},
				{Key: "width", Label: "Width", Tooltip: "Formant bandwidth", Min: 0.05, Max: 1, Curve: CurveLinear, Default: 0.3},
				{Key: "shift", Label: "Shift", Tooltip: "Formant drift rate", Min: 0, Max: 1, Curve: CurveLinear, Default: 0.4},
				{Key: "attack", Label: "Attack", Tooltip: "Envelope attack time", Min: 0.1, Max: 4, Curve: CurveExponential, Default: 1},
				{Key: "decay", Label: "Decay", Tooltip: "Envelope decay time", Min: 1, Max: 8, Curve: CurveExponential, Default: 4},
			},
			Weights: AffinityWeights{Bias: 0.2, Noisiness: 0.8, Brightness: 0.4, Density: -0.2},
		},
	}
}
