// internal/mbtiles/types.go - MBTiles container types
package mbtiles

import "fmt"

// TileRecord represents one row of the tiles table. Records are transient:
// iterators may reuse backing storage, so a record is only valid until the
// next cursor advance.
type TileRecord struct {
	Zoom       uint8  `json:"zoom"`
	Column     int64  `json:"column"`
	Row        int64  `json:"row"`
	ByteLength uint64 `json:"byte_length"`
	Data       []byte `json:"-"`
}

// String returns a string representation of the tile address
func (r TileRecord) String() string {
	return fmt.Sprintf("%d/%d/%d", r.Zoom, r.Column, r.Row)
}

// MetadataRow represents one name/value pair of the metadata table
type MetadataRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Stats accumulates tile size statistics
type Stats struct {
	TileCount  uint64 `json:"tile_count"`
	TotalBytes uint64 `json:"total_bytes"`
	MaxBytes   uint64 `json:"max_bytes"`
}

// add folds one tile length into the accumulator
func (s *Stats) add(length uint64) {
	s.TileCount++
	s.TotalBytes += length
	if length > s.MaxBytes {
		s.MaxBytes = length
	}
}

// TileExtent is the column/row range covered by a group of tiles
type TileExtent struct {
	MinColumn int64 `json:"min_column"`
	MaxColumn int64 `json:"max_column"`
	MinRow    int64 `json:"min_row"`
	MaxRow    int64 `json:"max_row"`
}

// expand grows the extent to include the given tile address
func (e *TileExtent) expand(column, row int64) {
	if column < e.MinColumn {
		e.MinColumn = column
	}
	if column > e.MaxColumn {
		e.MaxColumn = column
	}
	if row < e.MinRow {
		e.MinRow = row
	}
	if row > e.MaxRow {
		e.MaxRow = row
	}
}

// ZoomStats is the statistics entry for a single zoom level
type ZoomStats struct {
	Zoom   uint8      `json:"zoom"`
	Stats  Stats      `json:"stats"`
	Extent TileExtent `json:"extent"`
}

// Report holds the result of inspecting an mbtiles store. ByZoom is ordered
// the way zoom runs appeared in the scanned stream; for the sorted stream a
// Store produces that is ascending by zoom with one entry per level present.
type Report struct {
	Overall Stats       `json:"overall"`
	ByZoom  []ZoomStats `json:"by_zoom"`
}

// TileIterator is a forward-only cursor over tile rows. Next returns false
// once the stream is exhausted or a read fails; Err distinguishes the two.
type TileIterator interface {
	Next() (TileRecord, bool)
	Err() error
	Close() error
}

// MetadataIterator is a forward-only cursor over metadata rows
type MetadataIterator interface {
	Next() (MetadataRow, bool)
	Err() error
	Close() error
}

// Source provides the row streams a copy or inspection consumes
type Source interface {
	TileCount() (uint64, error)
	Tiles() (TileIterator, error)
	Metadata() (MetadataIterator, error)
}
