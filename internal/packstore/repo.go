package packstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/starford/imaginarium/internal/apperr"
	"github.com/starford/imaginarium/internal/models"
)

// PackRow is the lightweight listing representation of a stored pack.
type PackRow struct {
	ImageHash  string
	Seed       int64
	Version    string
	Generators int
	CreatedAt  time.Time
}

// SavePack inserts or replaces a pack. Regenerating the same (image, seed,
// version) is an idempotent upsert; the pipeline is deterministic, so the
// replacement manifest is identical anyway.
func (db *DB) SavePack(p *models.Pack) error {
	manifest, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("packstore: marshal pack: %w", err)
	}
	_, err = db.conn.Exec(`
		INSERT INTO packs (image_hash, seed, version, manifest, generators, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(image_hash, seed, version) DO UPDATE SET
			manifest   = excluded.manifest,
			generators = excluded.generators
	`, p.Manifest.ImageHash, p.Manifest.Seed, p.Manifest.PipelineVersion,
		string(manifest), len(p.Generators), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("packstore: save pack: %w", err)
	}
	return nil
}

// GetPack loads a stored pack by its identifying triple.
func (db *DB) GetPack(imageHash string, seed int64, version string) (*models.Pack, error) {
	var manifest string
	err := db.conn.QueryRow(`
		SELECT manifest FROM packs WHERE image_hash = ? AND seed = ? AND version = ?
	`, imageHash, seed, version).Scan(&manifest)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("packstore: get pack: %w", err)
	}
	var p models.Pack
	if err := json.Unmarshal([]byte(manifest), &p); err != nil {
		return nil, fmt.Errorf("packstore: parse stored pack: %w", err)
	}
	return &p, nil
}

// ListPacks returns rows newest first plus the total count.
func (db *DB) ListPacks(limit, offset int) ([]PackRow, int, error) {
	var total int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM packs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("packstore: count: %w", err)
	}
	rows, err := db.conn.Query(`
		SELECT image_hash, seed, version, generators, created_at
		FROM packs ORDER BY created_at DESC, image_hash LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("packstore: list: %w", err)
	}
	defer rows.Close()

	var out []PackRow
	for rows.Next() {
		var r PackRow
		if err := rows.Scan(&r.ImageHash, &r.Seed, &r.Version, &r.Generators, &r.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, r)
	}
	return out, total, rows.Err()
}

// DeletePack removes a stored pack.
func (db *DB) DeletePack(imageHash string, seed int64, version string) error {
	res, err := db.conn.Exec(`
		DELETE FROM packs WHERE image_hash = ? AND seed = ? AND version = ?
	`, imageHash, seed, version)
	if err != nil {
		return fmt.Errorf("packstore: delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
