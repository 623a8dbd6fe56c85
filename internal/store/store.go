// Package store implements the persistence adapter over the snapshot
// repository. It owns the serialized form of the application state and
// absorbs every storage failure at this boundary: reads degrade to the
// empty default, writes silently no-op. Callers never see an error value;
// the optional diagnostic hook exists so a deployment can still observe
// that data was dropped.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mhollis/gardenshare/internal/domain"
)

// SnapshotRepository is the raw blob access the adapter is built on.
type SnapshotRepository interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
}

// Store loads and saves the full AppData document.
type Store struct {
	snapshots SnapshotRepository

	// Diagnostic, when set, is invoked with every absorbed storage
	// failure. It must not be used to reintroduce error propagation.
	Diagnostic func(op string, err error)
}

// New creates a Store over the given snapshot repository.
func New(snapshots SnapshotRepository) *Store {
	return &Store{snapshots: snapshots}
}

var _ domain.DataStore = (*Store)(nil)

// Load deserializes the stored document. A missing or unparseable blob
// yields the empty default; the failure is logged, never propagated.
func (s *Store) Load(ctx context.Context) *domain.AppData {
	blob, err := s.snapshots.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("load app data", "error", err)
			s.diagnose("load", err)
		}
		return domain.DefaultAppData()
	}

	data := domain.DefaultAppData()
	if err := json.Unmarshal(blob, data); err != nil {
		slog.Error("parse app data", "error", err)
		s.diagnose("load", err)
		return domain.DefaultAppData()
	}
	return data
}

// Save serializes and stores the full structure, overwriting any prior
// value. Failures are logged and swallowed; callers cannot detect a
// failed save.
func (s *Store) Save(ctx context.Context, data *domain.AppData) {
	blob, err := json.Marshal(data)
	if err != nil {
		slog.Error("serialize app data", "error", err)
		s.diagnose("save", err)
		return
	}
	if err := s.snapshots.Put(ctx, blob); err != nil {
		slog.Error("save app data", "error", err)
		s.diagnose("save", err)
	}
}

func (s *Store) diagnose(op string, err error) {
	if s.Diagnostic != nil {
		s.Diagnostic(op, err)
	}
}
