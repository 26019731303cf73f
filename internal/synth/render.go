// Package synth renders short offline previews of candidate generators so
// their loudness can be measured before export. It is an approximation of
// the external synthesis engine, not a playback path: one mono buffer per
// candidate, rendered from the candidate's normalized axis positions.
package synth

import (
	"math"

	"github.com/starford/imaginarium/internal/registry"
)

const (
	// SampleRate of the preview render.
	SampleRate = 44100
	// renderLen keeps the preview short; loudness stabilizes well before
	// a fifth of a second for every voice model here.
	renderLen = 8192

	baseAmp = 0.5
)

// MeasureRMS renders the candidate and returns its loudness in dBFS. The
// second return is false when the render is effectively silent or the
// measurement is not finite; callers must not trust the first value then.
func MeasureRMS(tpl *registry.MethodTemplate, params [5]float64, subSeed uint64) (float64, bool) {
	buf := Render(tpl, params, subSeed)
	var sum float64
	for _, s := range buf {
		sum += s * s
	}
	rms := math.Sqrt(sum / float64(len(buf)))
	if rms < 1e-6 || math.IsNaN(rms) || math.IsInf(rms, 0) {
		return 0, false
	}
	db := 20 * math.Log10(rms)
	if math.IsNaN(db) || math.IsInf(db, 0) {
		return 0, false
	}
	return db, true
}

// Render produces the preview buffer. Deterministic: noise sources are
// seeded from subSeed, never from shared state, so identical candidates
// always render identical buffers.
func Render(tpl *registry.MethodTemplate, params [5]float64, subSeed uint64) []float64 {
	// The renderer works off normalized axis positions so it stays
	// independent of each method's raw units. Slot order is fixed by the
	// catalog: pitch, tone, character, attack, decay.
	var u [5]float64
	for i := range params {
		u[i] = tpl.Axes[i].Position(params[i])
	}

	out := make([]float64, renderLen)
	env := newEnvelope(u[3], u[4])
	ng := newNoise(subSeed)

	freq := 40 * math.Pow(50, u[0]) // 40..2000 Hz
	step := 2 * math.Pi * freq / SampleRate

	switch tpl.Family {
	case registry.FamilySubtractive:
		renderSubtractive(out, step, u, env)
	case registry.FamilyFM:
		renderFM(out, step, u, env)
	case registry.FamilyPhysical:
		renderPluck(out, freq, u, env, ng)
	case registry.FamilyNoise:
		renderNoise(out, u, env, ng)
	case registry.FamilyAdditive:
		renderAdditive(out, step, u, env)
	case registry.FamilyRing:
		renderRing(out, step, u, env)
	case registry.FamilyFormant:
		renderFormant(out, step, u, env, ng)
	}
	return out
}

// envelope is a linear attack into an exponential decay, scaled to the
// render length from the attack and decay axis positions.
type envelope struct {
	attackN int
	tau     float64
}

func newEnvelope(attack, decay float64) envelope {
	return envelope{
		attackN: int((0.02 + 0.2*attack) * renderLen),
		tau:     (0.1 + 0.9*decay) * renderLen,
	}
}

func (e envelope) at(i int) float64 {
	if i < e.attackN {
		return float64(i) / float64(e.attackN)
	}
	return math.Exp(-float64(i-e.attackN) / e.tau)
}

// noise is the linear congruential generator the preview voices share the
// shape of with the sfxr engine; one instance per render, seeded per
// candidate.
type noise struct{ state uint32 }

func newNoise(seed uint64) *noise {
	s := uint32(seed ^ seed>>32)
	if s == 0 {
		s = 12345
	}
	return &noise{state: s}
}

func (n *noise) next() float64 {
	n.state = n.state*1103515245 + 12345
	return float64(n.state)/float64(1<<31) - 1
}

func renderSubtractive(out []float64, step float64, u [5]float64, env envelope) {
	cut := 0.04 + 0.5*u[1]
	res := u[2]
	var phase, lp float64
	for i := range out {
		phase += step
		saw := 2*math.Mod(phase/(2*math.Pi), 1) - 1
		lp += (saw - lp) * cut
		out[i] = baseAmp * env.at(i) * (lp + res*0.4*(saw-lp))
	}
}

func renderFM(out []float64, step float64, u [5]float64, env envelope) {
	ratio := 0.5 + 3*u[1]
	index := 8 * u[2]
	var ph float64
	for i := range out {
		ph += step
		out[i] = baseAmp * env.at(i) * math.Sin(ph+index*math.Sin(ph*ratio))
	}
}

// renderPluck is a Karplus-Strong string: a noise burst through a damped
// averaging delay line.
func renderPluck(out []float64, freq float64, u [5]float64, env envelope, ng *noise) {
	period := int(SampleRate / freq)
	if period < 2 {
		period = 2
	}
	line := make([]float64, period)
	bright := 0.3 + 0.7*u[1]
	for i := range line {
		line[i] = ng.next() * bright
	}
	damp := 0.5 - 0.45*u[2]
	for i := range out {
		j := i % period
		k := (i + 1) % period
		avg := (line[j] + line[k]) / 2
		line[j] = avg * (1 - damp*0.1)
		out[i] = baseAmp * env.at(i) * line[j]
	}
}

func renderNoise(out []float64, u [5]float64, env envelope, ng *noise) {
	cut := 0.02 + 0.6*u[0]
	body := 0.3 + 0.6*u[1]
	var lp float64
	for i := range out {
		lp += (ng.next() - lp) * cut
		out[i] = baseAmp * env.at(i) * body * lp
	}
}

func renderAdditive(out []float64, step float64, u [5]float64, env envelope) {
	rolloff := 0.5 + 2*u[1]
	var ph float64
	for i := range out {
		ph += step
		var s float64
		for k := 1; k <= 6; k++ {
			s += math.Sin(ph*float64(k)) * math.Pow(float64(k), -rolloff)
		}
		out[i] = baseAmp * env.at(i) * s * 0.5
	}
}

func renderRing(out []float64, step float64, u [5]float64, env envelope) {
	ratio := 0.5 + 2.5*u[1]
	shine := u[2]
	var ph float64
	for i := range out {
		ph += step
		s := math.Sin(ph) * math.Sin(ph*ratio)
		s += shine * 0.3 * math.Sin(ph*ratio*3)
		out[i] = baseAmp * env.at(i) * s
	}
}

func renderFormant(out []float64, step float64, u [5]float64, env envelope, ng *noise) {
	breath := u[2]
	var ph, bp float64
	cut := 0.1 + 0.5*u[1]
	for i := range out {
		ph += step
		// Cubed saw approximates a glottal pulse.
		saw := 2*math.Mod(ph/(2*math.Pi), 1) - 1
		pulse := saw * saw * saw
		src := (1-breath)*pulse + breath*0.5*ng.next()
		bp += (src - bp) * cut
		out[i] = baseAmp * env.at(i) * (src - bp + bp*0.5)
	}
}
