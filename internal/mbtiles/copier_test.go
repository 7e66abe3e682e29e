// internal/mbtiles/copier_test.go - Copier round-trip and rollback tests
package mbtiles

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/valpere/mbtiles_inspect/internal"
	"github.com/valpere/mbtiles_inspect/internal/progress"
)

// openAll drains every row of a store
func openAll(t *testing.T, path string) ([]MetadataRow, []TileRecord) {
	t.Helper()

	store, err := Open(path, testScanConfig())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	metaIter, err := store.Metadata()
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	metadata := collectMetadata(t, metaIter)

	tileIter, err := store.Tiles()
	if err != nil {
		t.Fatalf("Tiles failed: %v", err)
	}
	tiles := collectTiles(t, tileIter)

	return metadata, tiles
}

func TestCopyRoundTrip(t *testing.T) {
	metadata := []MetadataRow{
		{Name: "name", Value: "roundtrip"},
		{Name: "format", Value: "png"},
	}
	tiles := []TileRecord{
		record(0, 0, 0, 12),
		record(1, 0, 1, 34),
		record(1, 1, 0, 56),
		record(6, 33, 21, 78),
	}
	srcPath := createTestStore(t, metadata, tiles)

	src, err := Open(srcPath, testScanConfig())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	destPath := filepath.Join(t.TempDir(), "copy.mbtiles")
	if err := Copy(src, destPath, progress.Nop{}); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	srcMetadata, srcTiles := openAll(t, srcPath)
	destMetadata, destTiles := openAll(t, destPath)

	if diff := cmp.Diff(srcMetadata, destMetadata); diff != "" {
		t.Errorf("metadata mismatch after copy (-src +dest):\n%s", diff)
	}
	if diff := cmp.Diff(srcTiles, destTiles); diff != "" {
		t.Errorf("tiles mismatch after copy (-src +dest):\n%s", diff)
	}
}

func TestCopyEmptyStore(t *testing.T) {
	srcPath := createTestStore(t, nil, nil)

	src, err := Open(srcPath, testScanConfig())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	destPath := filepath.Join(t.TempDir(), "empty-copy.mbtiles")
	if err := Copy(src, destPath, progress.Nop{}); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	destMetadata, destTiles := openAll(t, destPath)
	if len(destMetadata) != 0 {
		t.Errorf("expected no metadata rows, got %d", len(destMetadata))
	}
	if len(destTiles) != 0 {
		t.Errorf("expected no tile rows, got %d", len(destTiles))
	}
}

func TestCopyFailureLeavesNoRows(t *testing.T) {
	src := newFakeSource(
		[]MetadataRow{{Name: "name", Value: "doomed"}},
		[]TileRecord{
			record(1, 0, 0, 10),
			record(1, 0, 1, 10),
			record(1, 1, 0, 10),
			record(1, 1, 1, 10),
		},
	)
	// Fail after two of four tiles were already inserted.
	src.tilesFailAfter = 2

	destPath := filepath.Join(t.TempDir(), "partial.mbtiles")
	err := Copy(src, destPath, progress.Nop{})
	if err == nil {
		t.Fatal("expected copy to fail")
	}

	var appErr *internal.Error
	if !errors.As(err, &appErr) || appErr.Code != internal.ErrorCodeCopy {
		t.Errorf("expected %s, got %v", internal.ErrorCodeCopy, err)
	}

	// The schema exists, but the rolled back transaction must have left no
	// committed rows behind.
	db, err := sql.Open("sqlite3", destPath)
	if err != nil {
		t.Fatalf("failed to open destination: %v", err)
	}
	defer db.Close()

	var tileRows, metadataRows int
	if err := db.QueryRow("SELECT COUNT(*) FROM tiles").Scan(&tileRows); err != nil {
		t.Fatalf("failed to count destination tiles: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM metadata").Scan(&metadataRows); err != nil {
		t.Fatalf("failed to count destination metadata: %v", err)
	}

	if tileRows != 0 {
		t.Errorf("expected 0 committed tile rows, got %d", tileRows)
	}
	if metadataRows != 0 {
		t.Errorf("expected 0 committed metadata rows, got %d", metadataRows)
	}
}

func TestCopyNamesFailingStep(t *testing.T) {
	src := newFakeSource(nil, []TileRecord{record(1, 0, 0, 10)})
	src.tilesFailAfter = 0

	destPath := filepath.Join(t.TempDir(), "step.mbtiles")
	err := Copy(src, destPath, progress.Nop{})
	if err == nil {
		t.Fatal("expected copy to fail")
	}

	var appErr *internal.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an application error, got %v", err)
	}
	if appErr.Message != "failed to read tile row" {
		t.Errorf("expected the failing step to be named, got %q", appErr.Message)
	}
}
