// Package sqlite keeps repository snapshots as generations in a SQLite
// database. Every Save writes a complete new generation in one transaction;
// Load reads the newest generation for the store's category. Older
// generations are pruned down to a configured count.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Generation describes one saved snapshot.
type Generation struct {
	SnapshotID string         `json:"snapshot_id"`
	Category   types.Category `json:"category"`
	Seq        int64          `json:"seq"`
	SavedAt    time.Time      `json:"saved_at"`
	Count      int            `json:"count"`
}

// Store implements snapshot.Store for one category in a SQLite database.
// The database is opened for the duration of each call and closed before
// the call returns.
type Store[T types.Identifiable] struct {
	path     string
	category types.Category
	keep     int
	logger   *slog.Logger
}

// NewStore creates a Store for category backed by the database at path.
// keep is the number of generations retained; values below 1 use
// types.DefaultKeep. A nil logger uses slog.Default.
func NewStore[T types.Identifiable](path string, category types.Category, keep int, logger *slog.Logger) *Store[T] {
	if keep < 1 {
		keep = types.DefaultKeep
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{path: path, category: category, keep: keep, logger: logger}
}

// Path returns the database file path.
func (s *Store[T]) Path() string { return s.path }

// open opens the database and applies the schema.
func (s *Store[T]) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	db.SetMaxOpenConns(1)
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema to %s: %w", s.path, err)
		}
	}
	return db, nil
}

// readFailure classifies a failure to open an existing database for
// reading. A file that is not a SQLite database is malformed content.
func readFailure(err error) error {
	var serr *moderncsqlite.Error
	if errors.As(err, &serr) && serr.Code()&0xff == sqlite3.SQLITE_NOTADB {
		return fmt.Errorf("%w: %w", types.ErrDeserialization, err)
	}
	return fmt.Errorf("%w: %w", types.ErrIO, err)
}

// exists reports whether the database file is present. Load never creates
// a database.
func (s *Store[T]) exists() (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: stat %s: %w", types.ErrIO, s.path, err)
	}
	return true, nil
}

// newSnapshotID generates a UUID v7 string.
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Save writes items as a new generation and prunes old generations.
func (s *Store[T]) Save(items []T) error {
	records := make([]string, len(items))
	for i, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: encoding entity %d: %w", types.ErrIO, item.GetID(), err)
		}
		records[i] = string(b)
	}

	db, err := s.open()
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrIO, err)
	}
	defer db.Close()

	gen, err := s.insertGeneration(db, items, records)
	if err != nil {
		return fmt.Errorf("%w: saving %s generation: %w", types.ErrIO, s.category, err)
	}
	s.logger.Debug("snapshot generation saved",
		"path", s.path,
		"category", string(s.category),
		"snapshot_id", gen.SnapshotID,
		"seq", gen.Seq,
		"count", gen.Count,
	)
	return nil
}

func (s *Store[T]) insertGeneration(db *sql.DB, items []T, records []string) (Generation, error) {
	tx, err := db.Begin()
	if err != nil {
		return Generation{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRow(
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM snapshots WHERE category = ?",
		string(s.category)).Scan(&seq); err != nil {
		return Generation{}, fmt.Errorf("reading next sequence: %w", err)
	}

	gen := Generation{
		SnapshotID: newSnapshotID(),
		Category:   s.category,
		Seq:        seq,
		SavedAt:    time.Now().UTC(),
		Count:      len(items),
	}
	if _, err := tx.Exec(
		"INSERT INTO snapshots (snapshot_id, category, seq, saved_at, entity_count) VALUES (?, ?, ?, ?, ?)",
		gen.SnapshotID, string(gen.Category), gen.Seq, gen.SavedAt.Format(time.RFC3339Nano), gen.Count); err != nil {
		return Generation{}, fmt.Errorf("inserting snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO snapshot_entities (snapshot_id, position, entity_id, record) VALUES (?, ?, ?, ?)")
	if err != nil {
		return Generation{}, fmt.Errorf("preparing entity insert: %w", err)
	}
	defer stmt.Close()
	for i, item := range items {
		if _, err := stmt.Exec(gen.SnapshotID, i, item.GetID(), records[i]); err != nil {
			return Generation{}, fmt.Errorf("inserting entity %d: %w", item.GetID(), err)
		}
	}

	if err := s.prune(tx, seq); err != nil {
		return Generation{}, err
	}

	if err := tx.Commit(); err != nil {
		return Generation{}, fmt.Errorf("committing snapshot: %w", err)
	}
	return gen, nil
}

// prune deletes generations of the store's category older than the
// newest s.keep. newest is the sequence just written.
func (s *Store[T]) prune(tx *sql.Tx, newest int64) error {
	cutoff := newest - int64(s.keep)
	if cutoff < 1 {
		return nil
	}
	if _, err := tx.Exec(`
		DELETE FROM snapshot_entities WHERE snapshot_id IN (
			SELECT snapshot_id FROM snapshots WHERE category = ? AND seq <= ?)`,
		string(s.category), cutoff); err != nil {
		return fmt.Errorf("pruning snapshot entities: %w", err)
	}
	if _, err := tx.Exec(
		"DELETE FROM snapshots WHERE category = ? AND seq <= ?",
		string(s.category), cutoff); err != nil {
		return fmt.Errorf("pruning snapshots: %w", err)
	}
	return nil
}

// Load returns the newest generation for the store's category. A missing
// database or a category with no generations loads as empty.
func (s *Store[T]) Load() ([]T, error) {
	ok, err := s.exists()
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Debug("snapshot database missing, starting empty", "path", s.path)
		return []T{}, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, readFailure(err)
	}
	defer db.Close()

	gen, err := s.latest(db)
	if errors.Is(err, sql.ErrNoRows) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading latest %s generation: %w", types.ErrIO, s.category, err)
	}
	return s.loadGeneration(db, gen)
}

// LoadGeneration returns the entities of the generation with the given
// snapshot ID. Returns types.ErrNotFound if the generation does not exist
// for this category.
func (s *Store[T]) LoadGeneration(snapshotID string) ([]T, error) {
	ok, err := s.exists()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("generation %s: %w", snapshotID, types.ErrNotFound)
	}

	db, err := s.open()
	if err != nil {
		return nil, readFailure(err)
	}
	defer db.Close()

	row := db.QueryRow(
		"SELECT snapshot_id, category, seq, saved_at, entity_count FROM snapshots WHERE snapshot_id = ? AND category = ?",
		snapshotID, string(s.category))
	gen, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("generation %s: %w", snapshotID, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading generation %s: %w", types.ErrIO, snapshotID, err)
	}
	return s.loadGeneration(db, gen)
}

// Generations lists the retained generations for the store's category,
// newest first.
func (s *Store[T]) Generations() ([]Generation, error) {
	ok, err := s.exists()
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Generation{}, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, readFailure(err)
	}
	defer db.Close()

	rows, err := db.Query(
		"SELECT snapshot_id, category, seq, saved_at, entity_count FROM snapshots WHERE category = ? ORDER BY seq DESC",
		string(s.category))
	if err != nil {
		return nil, fmt.Errorf("%w: listing generations: %w", types.ErrIO, err)
	}
	defer rows.Close()

	gens := []Generation{}
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrDeserialization, err)
		}
		gens = append(gens, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing generations: %w", types.ErrIO, err)
	}
	return gens, nil
}

func (s *Store[T]) latest(db *sql.DB) (Generation, error) {
	row := db.QueryRow(
		"SELECT snapshot_id, category, seq, saved_at, entity_count FROM snapshots WHERE category = ? ORDER BY seq DESC LIMIT 1",
		string(s.category))
	return scanGeneration(row)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row scanner) (Generation, error) {
	var g Generation
	var category, savedAt string
	if err := row.Scan(&g.SnapshotID, &category, &g.Seq, &savedAt, &g.Count); err != nil {
		return Generation{}, err
	}
	g.Category = types.Category(category)
	t, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return Generation{}, fmt.Errorf("parsing saved_at of %s: %w", g.SnapshotID, err)
	}
	g.SavedAt = t
	return g, nil
}

// loadGeneration decodes every record of gen in position order. A record
// that does not decode, or a record count that disagrees with the
// generation header, fails the whole load.
func (s *Store[T]) loadGeneration(db *sql.DB, gen Generation) ([]T, error) {
	rows, err := db.Query(
		"SELECT position, record FROM snapshot_entities WHERE snapshot_id = ? ORDER BY position",
		gen.SnapshotID)
	if err != nil {
		return nil, fmt.Errorf("%w: reading generation %s: %w", types.ErrIO, gen.SnapshotID, err)
	}
	defer rows.Close()

	items := make([]T, 0, gen.Count)
	for rows.Next() {
		var pos int
		var record string
		if err := rows.Scan(&pos, &record); err != nil {
			return nil, fmt.Errorf("%w: scanning record: %w", types.ErrIO, err)
		}
		var item T
		if err := json.Unmarshal([]byte(record), &item); err != nil {
			return nil, fmt.Errorf("%w: generation %s position %d: %w",
				types.ErrDeserialization, gen.SnapshotID, pos, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading generation %s: %w", types.ErrIO, gen.SnapshotID, err)
	}
	if len(items) != gen.Count {
		return nil, fmt.Errorf("%w: generation %s has %d records, header says %d",
			types.ErrDeserialization, gen.SnapshotID, len(items), gen.Count)
	}

	s.logger.Debug("snapshot generation loaded",
		"path", s.path,
		"category", string(s.category),
		"snapshot_id", gen.SnapshotID,
		"count", len(items),
	)
	return items, nil
}
