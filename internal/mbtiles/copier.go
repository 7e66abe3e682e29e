// internal/mbtiles/copier.go - Whole-store duplication
package mbtiles

import (
	"database/sql"
	"fmt"

	"github.com/valpere/mbtiles_inspect/internal"
	"github.com/valpere/mbtiles_inspect/internal/progress"
)

// destSchema is the two-table mbtiles container shape
const destSchema = `
CREATE TABLE metadata (name TEXT, value TEXT);
CREATE TABLE tiles (
	zoom_level INTEGER,
	tile_column INTEGER,
	tile_row INTEGER,
	tile_data BLOB
);
`

// Copy duplicates every metadata pair and every tile row of src into a fresh
// mbtiles file at destPath, preserving tile order. All inserts run inside a
// single transaction: on any failure the transaction is rolled back and the
// destination holds no rows (the file itself may still exist and is the
// caller's to discard). The destination must be a fresh path; copying into an
// existing store is not supported.
func Copy(src Source, destPath string, reporter progress.Reporter) error {
	dest, err := sql.Open("sqlite3", destPath)
	if err == nil {
		err = dest.Ping()
	}
	if err != nil {
		return internal.NewError(internal.ErrorCodeOpen, fmt.Sprintf("failed to create destination mbtiles: %s", destPath), err)
	}
	defer dest.Close()

	if _, err := dest.Exec(destSchema); err != nil {
		return copyError("failed to create destination schema", err)
	}

	total, err := src.TileCount()
	if err != nil {
		return copyError("failed to read source tile count", err)
	}
	reporter.Start(int64(total))

	tx, err := dest.Begin()
	if err != nil {
		return copyError("failed to begin destination transaction", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	if err := copyMetadata(src, tx); err != nil {
		return err
	}
	if err := copyTiles(src, tx, reporter); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return copyError("failed to commit destination transaction", err)
	}

	reporter.Finish()
	return nil
}

// copyMetadata streams all metadata rows into the open transaction
func copyMetadata(src Source, tx *sql.Tx) error {
	metadata, err := src.Metadata()
	if err != nil {
		return copyError("failed to read source metadata", err)
	}
	defer metadata.Close()

	stmt, err := tx.Prepare("INSERT INTO metadata (name, value) VALUES (?, ?)")
	if err != nil {
		return copyError("failed to prepare metadata insert", err)
	}
	defer stmt.Close()

	for {
		row, ok := metadata.Next()
		if !ok {
			break
		}
		if _, err := stmt.Exec(row.Name, row.Value); err != nil {
			return copyError("failed to insert metadata row", err)
		}
	}
	if err := metadata.Err(); err != nil {
		return copyError("failed to read metadata row", err)
	}

	return nil
}

// copyTiles streams all tile rows into the open transaction in source order
func copyTiles(src Source, tx *sql.Tx, reporter progress.Reporter) error {
	tiles, err := src.Tiles()
	if err != nil {
		return copyError("failed to read source tiles", err)
	}
	defer tiles.Close()

	stmt, err := tx.Prepare("INSERT INTO tiles (zoom_level, tile_column, tile_row, tile_data) VALUES (?, ?, ?, ?)")
	if err != nil {
		return copyError("failed to prepare tile insert", err)
	}
	defer stmt.Close()

	for {
		record, ok := tiles.Next()
		if !ok {
			break
		}
		if _, err := stmt.Exec(record.Zoom, record.Column, record.Row, record.Data); err != nil {
			return copyError(fmt.Sprintf("failed to insert tile row %s", record), err)
		}
		reporter.Increment()
	}
	if err := tiles.Err(); err != nil {
		return copyError("failed to read tile row", err)
	}

	return nil
}

func copyError(message string, cause error) error {
	return internal.NewError(internal.ErrorCodeCopy, message, cause)
}
