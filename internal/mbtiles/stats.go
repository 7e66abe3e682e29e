// internal/mbtiles/stats.go - Streaming zoom-bucketed statistics
package mbtiles

import (
	"github.com/valpere/mbtiles_inspect/internal"
	"github.com/valpere/mbtiles_inspect/internal/progress"
)

// zoomRun accumulates one contiguous run of same-zoom rows. The zero value is
// the no-current-run state; start switches it to the in-run state.
type zoomRun struct {
	active bool
	zoom   uint8
	stats  Stats
	extent TileExtent
}

func (r *zoomRun) start(record TileRecord) {
	r.active = true
	r.zoom = record.Zoom
	r.stats = Stats{}
	r.stats.add(record.ByteLength)
	r.extent = TileExtent{
		MinColumn: record.Column,
		MaxColumn: record.Column,
		MinRow:    record.Row,
		MaxRow:    record.Row,
	}
}

func (r *zoomRun) fold(record TileRecord) {
	r.stats.add(record.ByteLength)
	r.extent.expand(record.Column, record.Row)
}

func (r *zoomRun) entry() ZoomStats {
	return ZoomStats{Zoom: r.zoom, Stats: r.stats, Extent: r.extent}
}

// Aggregate consumes a tile stream in a single pass and produces overall and
// per-zoom statistics. One ByZoom entry is emitted per contiguous run of
// same-zoom rows, so a stream ordered by zoom yields exactly one entry per
// zoom level present; an unordered stream yields one entry per run instead,
// with repeats for any zoom that reappears. A read failure aborts the
// aggregation and the partial result is discarded.
func Aggregate(tiles TileIterator, reporter progress.Reporter) (*Report, error) {
	report := &Report{}
	var run zoomRun

	for {
		record, ok := tiles.Next()
		if !ok {
			break
		}

		report.Overall.add(record.ByteLength)

		switch {
		case !run.active:
			run.start(record)
		case run.zoom != record.Zoom:
			report.ByZoom = append(report.ByZoom, run.entry())
			run.start(record)
		default:
			run.fold(record)
		}

		reporter.Increment()
	}

	if err := tiles.Err(); err != nil {
		return nil, internal.NewError(internal.ErrorCodeRead, "failed to read tile row", err)
	}

	if run.active {
		report.ByZoom = append(report.ByZoom, run.entry())
	}

	return report, nil
}

// Inspect scans the whole source and returns its statistics report
func Inspect(src Source, reporter progress.Reporter) (*Report, error) {
	total, err := src.TileCount()
	if err != nil {
		return nil, err
	}
	reporter.Start(int64(total))

	tiles, err := src.Tiles()
	if err != nil {
		return nil, err
	}
	defer tiles.Close()

	report, err := Aggregate(tiles, reporter)
	if err != nil {
		return nil, err
	}

	reporter.Finish()
	return report, nil
}
