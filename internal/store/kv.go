package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// kvRepo implements KVRepo using the ent SQL driver.
type kvRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	return getValue(ctx, r.drv, key)
}

func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	return withTx(ctx, r.drv, func(tx dialect.Tx) error {
		return r.put(ctx, tx, key, value)
	})
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(tableKV).
		Where(entsql.EQ(colName, key)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Update(ctx context.Context, key string, opts UpdateOpts, fn UpdateFunc) error {
	return withTx(ctx, r.drv, func(tx dialect.Tx) error {
		current, exists, err := getValue(ctx, tx, key)
		if err != nil {
			return err
		}

		next, err := fn(current, exists)
		if err != nil {
			return err
		}

		if opts.SnapshotReason != "" && exists {
			rev, err := r.seq.Next(ctx, tx)
			if err != nil {
				return err
			}
			err = insertSnapshot(ctx, tx, &Snapshot{
				Key:       key,
				Revision:  rev,
				Reason:    opts.SnapshotReason,
				Timestamp: time.Now().UTC(),
				Data:      current,
			})
			if err != nil {
				return err
			}
		}

		return r.put(ctx, tx, key, next)
	})
}

func (r *kvRepo) put(ctx context.Context, ex dialect.ExecQuerier, key, value string) error {
	rev, err := r.seq.Next(ctx, ex)
	if err != nil {
		return err
	}
	return putValue(ctx, ex, key, value, rev)
}

// getValue reads key using ex, which may be the driver or a transaction.
func getValue(ctx context.Context, ex dialect.ExecQuerier, key string) (string, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(colValue).
		From(entsql.Table(tableKV)).
		Where(entsql.EQ(colName, key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := ex.Query(ctx, query, args, &rows); err != nil {
		return "", false, fmt.Errorf("query %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", false, fmt.Errorf("query %q: %w", key, err)
		}
		return "", false, nil
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("scan %q: %w", key, err)
	}
	return value, true, nil
}

// putValue upserts key with the given revision.
func putValue(ctx context.Context, ex dialect.ExecQuerier, key, value string, rev int64) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableKV).
		Columns(colName, colValue, colRevision, colUpdatedAt).
		Values(key, value, rev, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns(colName),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := ex.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}
