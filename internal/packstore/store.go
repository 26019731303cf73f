package packstore

import "github.com/starford/imaginarium/internal/models"

// PackIndex defines the interface for pack catalog operations. Consumers
// should depend on this interface rather than the concrete *DB type to
// facilitate testing with mocks.
type PackIndex interface {
	SavePack(p *models.Pack) error
	GetPack(imageHash string, seed int64, version string) (*models.Pack, error)
	ListPacks(limit, offset int) ([]PackRow, int, error)
	DeletePack(imageHash string, seed int64, version string) error
	Close() error
}

// Verify *DB satisfies PackIndex at compile time.
var _ PackIndex = (*DB)(nil)
