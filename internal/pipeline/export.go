package pipeline

import (
	"fmt"

	"github.com/starford/imaginarium/internal/apperr"
	"github.com/starford/imaginarium/internal/models"
	"github.com/starford/imaginarium/internal/registry"
)

// Version identifies the pipeline revision recorded in every manifest.
// Consumers reject packs built by a version they do not understand.
const Version = "1.0.0"

// Export projects the normalized candidates into a Pack: one GeneratorRecord
// per candidate, in selection order, with the sampled values overlaid as the
// exported parameter defaults.
func Export(reg *registry.Registry, normalized []models.Candidate, imageHash string, seed int64) (*models.Pack, error) {
	gens := make([]models.GeneratorRecord, 0, len(normalized))
	for _, c := range normalized {
		tpl, ok := reg.Lookup(c.MethodID)
		if !ok {
			return nil, fmt.Errorf("export: method %q: %w", c.MethodID, apperr.ErrNotFound)
		}
		fields := make([]models.ParamField, len(tpl.Axes))
		for k, ax := range tpl.Axes {
			fields[k] = models.ParamField{
				Key:     ax.Key,
				Label:   ax.Label,
				Tooltip: ax.Tooltip,
				Default: c.Params[k],
				Min:     ax.Min,
				Max:     ax.Max,
				Curve:   ax.Curve,
			}
		}
		gens = append(gens, models.GeneratorRecord{
			Name:         fmt.Sprintf("%s (%s)", tpl.Name, c.Role),
			Synthdef:     tpl.Synthdef,
			CustomParams: fields,
			OutputTrimDB: c.TrimDB,
			RoleTag:      c.Role,
		})
	}
	return &models.Pack{
		Manifest: models.Manifest{
			ImageHash:       imageHash,
			Seed:            seed,
			PipelineVersion: Version,
		},
		Generators: gens,
	}, nil
}
