// internal/mbtiles/store.go - Read-only MBTiles store accessor
package mbtiles

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/valpere/mbtiles_inspect/internal"
	"github.com/valpere/mbtiles_inspect/internal/config"
)

// Store is a read-only accessor over an mbtiles container. It exposes the
// tile and metadata tables as forward-only cursors and must be closed after
// use to release the underlying database handle.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens an mbtiles file for reading. It fails if the file is missing,
// unreadable, or does not carry the expected metadata/tiles shape. Scan
// tuning is applied here once; it affects performance only.
func Open(filePath string, tuning config.ScanConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", filePath))
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeOpen, fmt.Sprintf("failed to open mbtiles: %s", filePath), err)
	}
	// Pragmas are per-connection, so keep the pool at a single connection.
	db.SetMaxOpenConns(1)

	if err := checkSchema(db); err != nil {
		db.Close()
		return nil, internal.NewError(internal.ErrorCodeOpen, fmt.Sprintf("not an mbtiles container: %s", filePath), err)
	}

	if err := applyScanPragmas(db, tuning); err != nil {
		db.Close()
		return nil, internal.NewError(internal.ErrorCodeOpen, fmt.Sprintf("failed to tune mbtiles scan: %s", filePath), err)
	}

	return &Store{db: db, path: filePath}, nil
}

// Path returns the file path the store was opened from
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle. Cursors obtained from the store must
// not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// TileCount returns the total number of rows in the tiles table
func (s *Store) TileCount() (uint64, error) {
	var count uint64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tiles").Scan(&count); err != nil {
		return 0, internal.NewError(internal.ErrorCodeRead, "failed to read tile count", err)
	}
	return count, nil
}

// Tiles returns a cursor over all tile rows ordered by zoom, column, row
// ascending. The cursor is single-pass; request a fresh one to re-scan.
func (s *Store) Tiles() (TileIterator, error) {
	rows, err := s.db.Query(
		"SELECT zoom_level, tile_column, tile_row, tile_data FROM tiles ORDER BY zoom_level, tile_column, tile_row",
	)
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeRead, "failed to query tiles", err)
	}
	return &tileRows{rows: rows}, nil
}

// Metadata returns a cursor over all metadata rows in stored order
func (s *Store) Metadata() (MetadataIterator, error) {
	rows, err := s.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeRead, "failed to query metadata", err)
	}
	return &metadataRows{rows: rows}, nil
}

// checkSchema verifies the two-table mbtiles container shape. Both tables may
// also be views in vacuumed or deduplicated files.
func checkSchema(db *sql.DB) error {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type IN ('table', 'view') AND name IN ('metadata', 'tiles')",
	).Scan(&count)
	if err != nil {
		return err
	}
	if count != 2 {
		return fmt.Errorf("metadata and tiles tables are required")
	}
	return nil
}

// applyScanPragmas applies the configured read-tuning pragmas
func applyScanPragmas(db *sql.DB, tuning config.ScanConfig) error {
	pragmas := make([]string, 0, 4)
	if tuning.QueryOnly {
		pragmas = append(pragmas, "PRAGMA query_only = ON")
	}
	if tuning.TempStoreMemory {
		pragmas = append(pragmas, "PRAGMA temp_store = MEMORY")
	}
	if tuning.SynchronousOff {
		pragmas = append(pragmas, "PRAGMA synchronous = OFF")
	}
	if tuning.CacheKiB > 0 {
		// Negative cache_size means KiB rather than pages.
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA cache_size = -%d", tuning.CacheKiB))
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// tileRows adapts sql.Rows to the TileIterator contract
type tileRows struct {
	rows *sql.Rows
	err  error
}

func (t *tileRows) Next() (TileRecord, bool) {
	if t.err != nil || !t.rows.Next() {
		return TileRecord{}, false
	}

	var record TileRecord
	var zoom int64
	if err := t.rows.Scan(&zoom, &record.Column, &record.Row, &record.Data); err != nil {
		t.err = err
		return TileRecord{}, false
	}
	record.Zoom = uint8(zoom)
	record.ByteLength = uint64(len(record.Data))

	return record, true
}

func (t *tileRows) Err() error {
	if t.err != nil {
		return t.err
	}
	return t.rows.Err()
}

func (t *tileRows) Close() error {
	return t.rows.Close()
}

// metadataRows adapts sql.Rows to the MetadataIterator contract
type metadataRows struct {
	rows *sql.Rows
	err  error
}

func (m *metadataRows) Next() (MetadataRow, bool) {
	if m.err != nil || !m.rows.Next() {
		return MetadataRow{}, false
	}

	var row MetadataRow
	if err := m.rows.Scan(&row.Name, &row.Value); err != nil {
		m.err = err
		return MetadataRow{}, false
	}

	return row, true
}

func (m *metadataRows) Err() error {
	if m.err != nil {
		return m.err
	}
	return m.rows.Err()
}

func (m *metadataRows) Close() error {
	return m.rows.Close()
}
