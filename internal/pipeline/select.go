package pipeline

import (
	"fmt"

	"github.com/starford/imaginarium/internal/apperr"
	"github.com/starford/imaginarium/internal/models"
	"github.com/starford/imaginarium/internal/registry"
)

// roleBias maps a target role to per-family fit multipliers. Soft weighting:
// low-affinity methods are down-weighted, never excluded outright. Roles and
// families missing from the table use 1.0.
var roleBias = map[string]map[registry.Family]float64{
	"bed": {
		registry.FamilySubtractive: 1.4,
		registry.FamilyAdditive:    1.25,
		registry.FamilyNoise:       1.15,
		registry.FamilyFM:          0.85,
		registry.FamilyRing:        0.8,
	},
	"accent": {
		registry.FamilyFM:          1.4,
		registry.FamilyRing:        1.3,
		registry.FamilyPhysical:    1.2,
		registry.FamilySubtractive: 0.8,
		registry.FamilyNoise:       0.7,
	},
	"texture": {
		registry.FamilyNoise:       1.5,
		registry.FamilyFormant:     1.25,
		registry.FamilyRing:        1.1,
		registry.FamilySubtractive: 0.85,
	},
	"lead": {
		registry.FamilyFM:       1.3,
		registry.FamilyAdditive: 1.3,
		registry.FamilyFormant:  1.15,
		registry.FamilyNoise:    0.7,
	},
	"rhythm": {
		registry.FamilyPhysical: 1.4,
		registry.FamilyRing:     1.2,
		registry.FamilyFM:       1.1,
	},
}

// RoleBias returns the fit multiplier for a role/family pair.
func RoleBias(role string, f registry.Family) float64 {
	if m, ok := roleBias[role]; ok {
		if b, ok := m[f]; ok {
			return b
		}
	}
	return 1.0
}

// Select fills the role plan from the candidate pool, one winner per role
// slot in plan order.
//
// Ranking within a slot is fit score (affinity × role bias) descending; ties
// break on lowest candidate index, then method ID, never on pool insertion
// order. No two winners share a method unless the plan is longer than the
// number of distinct methods in the pool; then reuse is permitted, starting
// from the highest remaining fit. When a slot cannot be filled at all the
// whole selection fails with apperr.ErrPoolExhausted; a partial ensemble is
// never returned.
func Select(reg *registry.Registry, cands []models.Candidate, plan []string) ([]models.Candidate, error) {
	if len(plan) == 0 {
		return nil, fmt.Errorf("select: empty role plan")
	}
	if len(cands) < len(plan) {
		return nil, fmt.Errorf("%w: %d candidates for %d slots", apperr.ErrPoolExhausted, len(cands), len(plan))
	}

	distinct := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		distinct[c.MethodID] = struct{}{}
	}
	allowReuse := len(plan) > len(distinct)

	taken := make([]bool, len(cands))
	usedMethod := make(map[string]bool, len(plan))
	selected := make([]models.Candidate, 0, len(plan))

	for _, role := range plan {
		idx := bestFor(reg, cands, taken, usedMethod, role, true)
		if idx < 0 && allowReuse {
			idx = bestFor(reg, cands, taken, usedMethod, role, false)
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: no eligible candidate for role %q", apperr.ErrPoolExhausted, role)
		}
		winner := cands[idx]
		winner.Role = role
		selected = append(selected, winner)
		taken[idx] = true
		usedMethod[winner.MethodID] = true
	}
	return selected, nil
}

// bestFor scans the pool for the highest-fit untaken candidate. When
// freshOnly is set, candidates of already-selected methods are skipped.
func bestFor(reg *registry.Registry, cands []models.Candidate, taken []bool, usedMethod map[string]bool, role string, freshOnly bool) int {
	best := -1
	var bestFit float64
	for i, c := range cands {
		if taken[i] {
			continue
		}
		if freshOnly && usedMethod[c.MethodID] {
			continue
		}
		tpl, ok := reg.Lookup(c.MethodID)
		if !ok {
			continue
		}
		fit := c.Affinity * RoleBias(role, tpl.Family)
		if best < 0 || fit > bestFit || (fit == bestFit && wins(c, cands[best])) {
			best = i
			bestFit = fit
		}
	}
	return best
}

// wins is the deterministic tie-break: lowest sub-seed-derived index first,
// then method ID.
func wins(a, b models.Candidate) bool {
	if a.Index != b.Index {
		return a.Index < b.Index
	}
	return a.MethodID < b.MethodID
}
