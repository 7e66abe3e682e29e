// pkg/style/parser.go - Style document parsing
package style

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoSourceLayers indicates a well-formed style document whose layers list
// holds no usable source-layer reference
var ErrNoSourceLayers = errors.New("style json contains no source-layer entries")

// ParseError indicates a style document that could not be interpreted
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// layerDoc holds the raw fields of one entry of the layers array. Fields stay
// raw so that a single malformed field degrades to "absent" instead of
// failing the whole document.
type layerDoc struct {
	Source      json.RawMessage            `json:"source"`
	SourceLayer json.RawMessage            `json:"source-layer"`
	MinZoom     json.RawMessage            `json:"minzoom"`
	MaxZoom     json.RawMessage            `json:"maxzoom"`
	Layout      json.RawMessage            `json:"layout"`
	Paint       map[string]json.RawMessage `json:"paint"`
}

// LoadFile reads and parses a style document from disk
func LoadFile(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("failed to read style file: %s", path), Cause: err}
	}
	return Parse(data)
}

// Parse parses a style document into a queryable index. It fails with a
// ParseError if the document is not valid JSON or has no layers array, and
// with ErrNoSourceLayers if no layer survives the per-layer skip rules.
func Parse(data []byte) (*Style, error) {
	var doc struct {
		Layers json.RawMessage `json:"layers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Message: "failed to parse style json", Cause: err}
	}
	if doc.Layers == nil {
		return nil, &ParseError{Message: "style json missing layers array"}
	}

	var rawLayers []json.RawMessage
	if err := json.Unmarshal(doc.Layers, &rawLayers); err != nil {
		return nil, &ParseError{Message: "style layers is not an array", Cause: err}
	}

	index := make(map[string][]Layer)
	for _, raw := range rawLayers {
		var entry layerDoc
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		// A layer without a source or a source-layer name renders nothing
		// from any tile and is not indexed.
		if entry.Source == nil {
			continue
		}
		name, ok := asString(entry.SourceLayer)
		if !ok {
			continue
		}

		index[name] = append(index[name], Layer{
			MinZoom:    asFloat(entry.MinZoom),
			MaxZoom:    asFloat(entry.MaxZoom),
			Visibility: parseVisibility(entry.Layout),
			Paint:      parsePaint(entry.Paint),
		})
	}

	if len(index) == 0 {
		return nil, ErrNoSourceLayers
	}

	return &Style{layersBySourceLayer: index}, nil
}

// parseVisibility extracts layout.visibility; anything but a string value
// degrades to absent
func parseVisibility(layout json.RawMessage) string {
	if layout == nil {
		return ""
	}
	var doc struct {
		Visibility json.RawMessage `json:"visibility"`
	}
	if err := json.Unmarshal(layout, &doc); err != nil {
		return ""
	}
	visibility, _ := asString(doc.Visibility)
	return visibility
}

// parsePaint resolves the recognized paint properties of a layer entry
func parsePaint(raw map[string]json.RawMessage) map[string]PaintValue {
	paint := make(map[string]PaintValue)
	for _, property := range recognizedPaintProperties {
		value, ok := raw[property]
		if !ok {
			continue
		}
		if parsed, ok := parsePaintValue(value); ok {
			paint[property] = parsed
		}
	}
	return paint
}

// parsePaintValue parses a bare number into a Scalar, or an object carrying a
// stops list into Stops. Malformed stop entries and stops with a zoom outside
// [0, 255] are dropped; with no valid stop left the property counts as absent.
func parsePaintValue(raw json.RawMessage) (PaintValue, bool) {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return Scalar(number), true
	}

	var obj struct {
		Stops []json.RawMessage `json:"stops"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.Stops == nil {
		return nil, false
	}

	var stops Stops
	for _, rawStop := range obj.Stops {
		var pair []float64
		if err := json.Unmarshal(rawStop, &pair); err != nil || len(pair) < 2 {
			continue
		}
		zoom := int64(pair[0])
		if zoom < 0 || zoom > 255 {
			continue
		}
		stops = append(stops, Stop{Zoom: uint8(zoom), Value: pair[1]})
	}
	if len(stops) == 0 {
		return nil, false
	}

	return stops, true
}

// asString unmarshals a raw value as a JSON string
func asString(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// asFloat unmarshals a raw value as a JSON number, absent when it is not one
func asFloat(raw json.RawMessage) *float64 {
	if raw == nil {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}
