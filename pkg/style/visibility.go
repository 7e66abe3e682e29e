// pkg/style/visibility.go - Visibility resolution
package style

import "sort"

// SourceLayerNames returns the sorted set of source-layer names the style
// references
func (s *Style) SourceLayerNames() []string {
	names := make([]string, 0, len(s.layersBySourceLayer))
	for name := range s.layersBySourceLayer {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsVisibleAtZoom reports whether any rule bound to the named source-layer
// admits the zoom and renders visible output there. Unknown names are simply
// not visible.
func (s *Style) IsVisibleAtZoom(name string, zoom uint8) bool {
	for _, layer := range s.layersBySourceLayer[name] {
		if layer.visibleAtZoom(zoom) && layer.rendered(zoom) {
			return true
		}
	}
	return false
}

// visibleAtZoom checks layout visibility and the zoom range. The minimum
// bound is inclusive, the maximum exclusive: maxzoom names one past the last
// visible level.
func (l Layer) visibleAtZoom(zoom uint8) bool {
	if l.Visibility == "none" {
		return false
	}
	if l.MinZoom != nil && float64(zoom) < *l.MinZoom {
		return false
	}
	if l.MaxZoom != nil && float64(zoom) >= *l.MaxZoom {
		return false
	}
	return true
}

// rendered reports whether every recognized paint property present on the
// rule is non-zero at the given zoom. Absent properties never gate.
func (l Layer) rendered(zoom uint8) bool {
	for _, property := range recognizedPaintProperties {
		value, ok := l.Paint[property]
		if !ok {
			continue
		}
		if !value.NonzeroAtZoom(zoom) {
			return false
		}
	}
	return true
}
