// cmd/validate_test.go - Unit tests for path gating
package cmd

import "testing"

func TestEnsureMbtilesPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain mbtiles", "world.mbtiles", false},
		{"uppercase extension", "WORLD.MBTILES", false},
		{"nested path", "/data/tiles/world.mbtiles", false},
		{"sqlite extension", "world.sqlite", true},
		{"no extension", "world", true},
		{"suffix only", "mbtiles", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureMbtilesPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ensureMbtilesPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
