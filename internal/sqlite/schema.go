package sqlite

// Schema DDL. Every statement is idempotent so a store can open a database
// that an earlier process created.
const (
	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    seq INTEGER NOT NULL,
    saved_at TEXT NOT NULL,
    entity_count INTEGER NOT NULL
);`

	createSnapshotEntities = `CREATE TABLE IF NOT EXISTS snapshot_entities (
    snapshot_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    entity_id INTEGER NOT NULL,
    record TEXT NOT NULL,
    PRIMARY KEY (snapshot_id, position),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`
)

// Index DDL.
const (
	idxSnapshotsCategorySeq = `CREATE UNIQUE INDEX IF NOT EXISTS idx_snapshots_category_seq ON snapshots(category, seq);`
	idxEntitiesSnapshot     = `CREATE INDEX IF NOT EXISTS idx_snapshot_entities_snapshot ON snapshot_entities(snapshot_id);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createSnapshots,
	createSnapshotEntities,
	idxSnapshotsCategorySeq,
	idxEntitiesSnapshot,
}
