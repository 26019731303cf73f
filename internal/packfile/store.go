// Package packfile persists pack manifests as JSON files, the on-disk
// contract consumed by the audio engine and preset layer.
package packfile

import "github.com/starford/imaginarium/internal/models"

// Store abstracts pack manifest persistence. Consumers depend on this
// interface rather than the concrete *FS type to facilitate testing.
type Store interface {
	Write(p *models.Pack) (string, error)
	Read(name string) (*models.Pack, error)
	List() ([]string, error)
}

// Verify *FS satisfies Store at compile time.
var _ Store = (*FS)(nil)
