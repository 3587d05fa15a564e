package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo using the ent SQL driver.
type snapshotRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var snapshotColumns = []string{colID, colKey, colRevision, colReason, colTimestamp, colData}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	return withTx(ctx, r.drv, func(tx dialect.Tx) error {
		if snap.Revision == 0 {
			rev, err := r.seq.Next(ctx, tx)
			if err != nil {
				return err
			}
			snap.Revision = rev
		}
		if snap.Timestamp.IsZero() {
			snap.Timestamp = time.Now().UTC()
		}
		return insertSnapshot(ctx, tx, snap)
	})
}

func (r *snapshotRepo) Latest(ctx context.Context, key string) (*Snapshot, error) {
	snaps, err := querySnapshots(ctx, r.drv, key, 1)
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}

func (r *snapshotRepo) List(ctx context.Context, key string, limit int) ([]Snapshot, error) {
	snaps, err := querySnapshots(ctx, r.drv, key, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, key string, keep int) error {
	if keep < 0 {
		keep = 0
	}
	// Find the ID threshold: the newest snapshot that falls outside keep.
	query, args := entsql.Dialect(dialect.SQLite).
		Select(colID).
		From(entsql.Table(tableSnapshots)).
		Where(entsql.EQ(colKey, key)).
		OrderBy(entsql.Desc(colID)).
		Offset(keep).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var threshold int
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("close prune rows: %w", err)
	}
	if !found {
		return nil // fewer than keep snapshots exist
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Delete(tableSnapshots).
		Where(entsql.And(
			entsql.EQ(colKey, key),
			entsql.LTE(colID, threshold),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Restore(ctx context.Context, key, reason string) (*Snapshot, error) {
	var restored *Snapshot
	err := withTx(ctx, r.drv, func(tx dialect.Tx) error {
		snaps, err := querySnapshots(ctx, tx, key, 1)
		if err != nil {
			return fmt.Errorf("query latest snapshot: %w", err)
		}
		if len(snaps) == 0 {
			return ErrNoSnapshot
		}
		snap := snaps[0]

		query, args := entsql.Dialect(dialect.SQLite).
			Delete(tableSnapshots).
			Where(entsql.EQ(colID, snap.ID)).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("remove restored snapshot: %w", err)
		}

		// Keep the value being replaced so the restore itself can be undone.
		if reason != "" {
			current, exists, err := getValue(ctx, tx, key)
			if err != nil {
				return err
			}
			if exists {
				rev, err := r.seq.Next(ctx, tx)
				if err != nil {
					return err
				}
				err = insertSnapshot(ctx, tx, &Snapshot{
					Key:       key,
					Revision:  rev,
					Reason:    reason,
					Timestamp: time.Now().UTC(),
					Data:      current,
				})
				if err != nil {
					return err
				}
			}
		}

		rev, err := r.seq.Next(ctx, tx)
		if err != nil {
			return err
		}
		if err := putValue(ctx, tx, key, snap.Data, rev); err != nil {
			return err
		}
		restored = &snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restored, nil
}

func insertSnapshot(ctx context.Context, ex dialect.ExecQuerier, snap *Snapshot) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSnapshots).
		Columns(colKey, colRevision, colReason, colTimestamp, colData).
		Values(snap.Key, snap.Revision, snap.Reason, snap.Timestamp, snap.Data).
		Returning(colID).
		Query()

	var rows entsql.Rows
	if err := ex.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	defer rows.Close()

	id, err := entsql.ScanInt(&rows)
	if err != nil {
		return fmt.Errorf("scan snapshot id: %w", err)
	}
	snap.ID = id
	return nil
}

func querySnapshots(ctx context.Context, ex dialect.ExecQuerier, key string, limit int) ([]Snapshot, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(snapshotColumns...).
		From(entsql.Table(tableSnapshots)).
		Where(entsql.EQ(colKey, key)).
		OrderBy(entsql.Desc(colID))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := ex.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Key, &s.Revision, &s.Reason, &s.Timestamp, &s.Data); err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}
