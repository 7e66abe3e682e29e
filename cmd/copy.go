// cmd/copy.go - Archive duplication command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/mbtiles_inspect/internal/mbtiles"
)

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <input.mbtiles> <output.mbtiles>",
	Short: "Duplicate an MBTiles archive",
	Long: `Copy every metadata pair and every tile row of an MBTiles archive into a
freshly created destination, preserving tile order. All writes happen inside
a single transaction, so a failed copy leaves no committed rows behind.

Examples:
  # Duplicate an archive
  mbtiles-inspect copy world.mbtiles world-copy.mbtiles

  # Replace an existing destination
  mbtiles-inspect copy world.mbtiles world-copy.mbtiles --force`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().Bool("force", false, "remove the destination first if it exists")
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	input, output := args[0], args[1]
	if err := ensureMbtilesPath(input); err != nil {
		return err
	}
	if err := ensureMbtilesPath(output); err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if pathExists(output) {
		if !force && !cfg.Copy.Force {
			return fmt.Errorf("output path %s already exists and cannot be overwritten", output)
		}
		if err := os.Remove(output); err != nil {
			return fmt.Errorf("failed to remove existing output %s: %w", output, err)
		}
	}

	store, err := mbtiles.Open(input, cfg.Scan)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Infof("copying %s to %s", input, output)
	start := time.Now()

	if err := mbtiles.Copy(store, output, newReporter(cfg, "Tiles: ")); err != nil {
		logger.Errorf("copy failed, destination %s holds no committed rows: %v", output, err)
		return err
	}

	logger.Infof("copy finished in %.3fs", time.Since(start).Seconds())
	return nil
}
