// cmd/validate.go - Path gating helpers
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/valpere/mbtiles_inspect/internal"
)

// ensureMbtilesPath gates which paths may be opened as tile stores. Only
// .mbtiles paths (case-insensitive) are accepted.
func ensureMbtilesPath(path string) error {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".mbtiles") {
		return nil
	}
	return internal.NewError(internal.ErrorCodeValidation,
		fmt.Sprintf("only .mbtiles paths are supported, got: %s", path), nil)
}

// pathExists reports whether anything exists at the given path
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
