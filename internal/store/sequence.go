package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out the global revision number stamped on every
// key-value write and every snapshot. A snapshot's revision tells which
// write it captured, and revisions order writes across keys even when
// timestamps collide.
//
// The counter is a single-row table updated with RETURNING so the increment
// is atomic at the database level; the mutex serializes within the process.
// Next takes the ExecQuerier to run on so callers inside a transaction keep
// using their transaction's connection.
type sequenceCounter struct {
	mu sync.Mutex
}

// newSequenceCounter seeds the counter row if it does not exist yet.
func newSequenceCounter(ctx context.Context, ex dialect.ExecQuerier) (*sequenceCounter, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSequence).
		Columns(colID, colNextVal).
		Values(1, 1).
		OnConflict(entsql.ConflictColumns(colID), entsql.DoNothing()).
		Query()
	if err := ex.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{}, nil
}

const nextSequenceSQL = "UPDATE `global_sequence` SET `next_val` = `next_val` + 1 WHERE `id` = 1 RETURNING `next_val` - 1"

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context, ex dialect.ExecQuerier) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var rows entsql.Rows
	if err := ex.Query(ctx, nextSequenceSQL, []any{}, &rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	seq, err := entsql.ScanInt64(&rows)
	if err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return seq, nil
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on error.
func withTx(ctx context.Context, drv dialect.Driver, fn func(tx dialect.Tx) error) error {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
