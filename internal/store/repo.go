package store

import (
	"context"
	"errors"
	"time"
)

// ErrNoSnapshot is returned by Restore when no snapshot exists for a key.
var ErrNoSnapshot = errors.New("no snapshot available")

// UpdateFunc receives the current value of a key (exists is false when the
// key has never been written) and returns the value to store. Returning an
// error aborts the update and nothing is written.
type UpdateFunc func(current string, exists bool) (string, error)

// UpdateOpts configures a read-modify-write update.
type UpdateOpts struct {
	// SnapshotReason, when non-empty, saves the current value as a snapshot
	// in the same transaction before the new value is written.
	SnapshotReason string
}

// KVRepo is a string key-value store. Each key holds one serialized document.
type KVRepo interface {
	// Get returns the value for key. exists is false when key is absent.
	Get(ctx context.Context, key string) (value string, exists bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Update reads key, applies fn and writes the result atomically.
	Update(ctx context.Context, key string, opts UpdateOpts, fn UpdateFunc) error
}

// Snapshot is a saved copy of a key's value taken before a destructive write.
type Snapshot struct {
	ID        int
	Key       string
	Revision  int64
	Reason    string
	Timestamp time.Time
	Data      string
}

// SnapshotRepo manages value snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. Revision is assigned when zero.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for key, or nil if none exist.
	Latest(ctx context.Context, key string) (*Snapshot, error)

	// List returns snapshots for key, newest first. limit <= 0 means all.
	List(ctx context.Context, key string, limit int) ([]Snapshot, error)

	// Prune deletes all but the keep most recent snapshots for key.
	Prune(ctx context.Context, key string, keep int) error

	// Restore writes the latest snapshot back to its key and removes the
	// snapshot, in one transaction. A non-empty reason first saves the value
	// being replaced as a new snapshot, so a second Restore undoes the
	// first. Returns ErrNoSnapshot when there is nothing to restore.
	Restore(ctx context.Context, key, reason string) (*Snapshot, error)
}
