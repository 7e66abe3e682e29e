// internal/mbtiles/bounds.go - Geographic extent of a tile range
package mbtiles

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// GeoBound converts the covered tile range at the given zoom into a WGS84
// bound. MBTiles rows are TMS-addressed, so the row axis is flipped before
// the corner tiles are resolved.
func (e TileExtent) GeoBound(zoom uint8) orb.Bound {
	z := maptile.Zoom(zoom)
	flip := func(row int64) uint32 {
		return uint32((int64(1)<<zoom - 1) - row)
	}

	// The TMS max row flips to the XYZ min row, so the two corner tiles
	// below are geographic opposites.
	southWest := maptile.New(uint32(e.MinColumn), flip(e.MinRow), z)
	northEast := maptile.New(uint32(e.MaxColumn), flip(e.MaxRow), z)

	return southWest.Bound().Union(northEast.Bound())
}
