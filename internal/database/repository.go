package database

import (
	"context"
	"database/sql"
	"sync"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*WorkspaceRepo
	*TaskRepo

	db *sql.DB

	// writeMu serializes write transactions so that checks made inside one
	// (workspace exists, workspace has no tasks) still hold at commit.
	writeMu *sync.Mutex
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		WorkspaceRepo: &WorkspaceRepo{db: db},
		TaskRepo:      &TaskRepo{db: db},
		db:            db,
		writeMu:       &sync.Mutex{},
	}
}

// WithTx runs fn inside a single write transaction. If fn returns an error,
// or the commit fails, nothing fn wrote is kept.
func (r *Repository) WithTx(ctx context.Context, fn func(tx Store) error) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&txStore{
			WorkspaceRepo: &WorkspaceRepo{db: tx},
			TaskRepo:      &TaskRepo{db: tx},
		})
	})
}

// txStore is the Store handed to WithTx callbacks; every query runs on the transaction.
type txStore struct {
	*WorkspaceRepo
	*TaskRepo
}
