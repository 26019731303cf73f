package pipeline

import (
	"github.com/starford/imaginarium/internal/models"
	"github.com/starford/imaginarium/internal/registry"
)

// Generate produces the candidate pool: poolPerMethod sampled instantiations
// of every method in the registry, in registry order. Purely a function of
// (spec, seed, catalog): identical inputs always yield identical candidates,
// including their affinity annotation.
func Generate(reg *registry.Registry, spec models.SoundSpec, seed int64, poolPerMethod int) []models.Candidate {
	out := make([]models.Candidate, 0, reg.Len()*poolPerMethod)
	for _, tpl := range reg.All() {
		sub := subSeed(seed, tpl.ID)
		aff := tpl.Affinity(spec)
		for i := 0; i < poolPerMethod; i++ {
			st := newStream(sub, i)
			c := models.Candidate{
				MethodID: tpl.ID,
				SubSeed:  sub,
				Index:    i,
				Affinity: aff,
			}
			for k := range tpl.Axes {
				c.Params[k] = tpl.Axes[k].ValueAt(st.float())
			}
			out = append(out, c)
		}
	}
	return out
}
