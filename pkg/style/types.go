// pkg/style/types.go - Mapbox style document model
package style

// recognizedPaintProperties is the closed set of paint properties whose
// zero value at a zoom suppresses rendering. Any other paint property never
// gates visibility.
var recognizedPaintProperties = []string{
	"fill-opacity",
	"fill-outline-color",
	"line-opacity",
	"line-width",
	"icon-size",
	"text-size",
	"text-max-width",
	"text-opacity",
	"raster-opacity",
	"circle-radius",
	"circle-opacity",
	"fill-extrusion-opacity",
	"heatmap-opacity",
}

// PaintValue is either a constant paint value or a zoom-keyed step function,
// resolved once at parse time
type PaintValue interface {
	// NonzeroAtZoom reports whether the effective value at the given zoom
	// is non-zero
	NonzeroAtZoom(zoom uint8) bool
}

// Scalar is a constant paint value
type Scalar float64

func (s Scalar) NonzeroAtZoom(zoom uint8) bool {
	return float64(s) != 0
}

// Stop maps one integer zoom level to a property value
type Stop struct {
	Zoom  uint8
	Value float64
}

// Stops is a zoom-keyed step function
type Stops []Stop

// NonzeroAtZoom looks for a stop keyed at exactly the given zoom. Without an
// exact match the property counts as non-zero: the surrounding stops are not
// stepped or interpolated, and an unknown value may still render.
func (s Stops) NonzeroAtZoom(zoom uint8) bool {
	for _, stop := range s {
		if stop.Zoom == zoom {
			return stop.Value != 0
		}
	}
	return true
}

// Layer is one rendering rule bound to a single source-layer. A source-layer
// may carry several rules, one per style layer that references it.
type Layer struct {
	MinZoom    *float64
	MaxZoom    *float64
	Visibility string
	Paint      map[string]PaintValue
}

// Style indexes the rendering rules of a parsed style document by
// source-layer name. It is immutable after construction.
type Style struct {
	layersBySourceLayer map[string][]Layer
}
