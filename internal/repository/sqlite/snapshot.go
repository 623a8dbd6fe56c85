package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mhollis/gardenshare/internal/domain"
)

// SnapshotRepository stores the serialized application state as a single
// row. The whole document is read and rewritten on every access; there are
// deliberately no finer-grained queries, so concurrent writers would
// resolve as last-write-wins on the full blob.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SQLite-backed SnapshotRepository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db.SqlDB}
}

// Get returns the stored snapshot bytes, or domain.ErrNotFound when
// nothing has been saved yet.
func (r *SnapshotRepository) Get(ctx context.Context) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM app_state WHERE id = 1",
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return data, nil
}

// Put overwrites the stored snapshot with the given bytes.
func (r *SnapshotRepository) Put(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO app_state (id, data) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		data,
	)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}
