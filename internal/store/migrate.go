package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	tableKV        = "kv_entries"
	tableSnapshots = "snapshots"
	tableSequence  = "global_sequence"

	colName      = "name"
	colValue     = "value"
	colRevision  = "revision"
	colUpdatedAt = "updated_at"

	colID        = "id"
	colKey       = "key_name"
	colReason    = "reason"
	colTimestamp = "timestamp"
	colData      = "data"

	colNextVal = "next_val"
)

// textSize marks a column as unbounded text.
const textSize = 2147483647

var (
	// KVEntriesColumns holds the columns for the "kv_entries" table.
	KVEntriesColumns = []*schema.Column{
		{Name: colName, Type: field.TypeString, Unique: true},
		{Name: colValue, Type: field.TypeString, Size: textSize},
		{Name: colRevision, Type: field.TypeInt64},
		{Name: colUpdatedAt, Type: field.TypeTime},
	}
	// KVEntriesTable holds the schema information for the "kv_entries" table.
	KVEntriesTable = &schema.Table{
		Name:       tableKV,
		Columns:    KVEntriesColumns,
		PrimaryKey: []*schema.Column{KVEntriesColumns[0]},
	}

	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colKey, Type: field.TypeString},
		{Name: colRevision, Type: field.TypeInt64},
		{Name: colReason, Type: field.TypeString, Default: ""},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colData, Type: field.TypeString, Size: textSize},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       tableSnapshots,
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_key_name",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[4]},
			},
		},
	}

	// GlobalSequenceColumns holds the columns for the "global_sequence" table.
	GlobalSequenceColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt},
		{Name: colNextVal, Type: field.TypeInt64, Default: 1},
	}
	// GlobalSequenceTable holds the schema information for the "global_sequence" table.
	GlobalSequenceTable = &schema.Table{
		Name:       tableSequence,
		Columns:    GlobalSequenceColumns,
		PrimaryKey: []*schema.Column{GlobalSequenceColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KVEntriesTable,
		SnapshotsTable,
		GlobalSequenceTable,
	}
)
