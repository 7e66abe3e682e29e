// cmd/inspect.go - Archive statistics command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/mbtiles_inspect/internal/mbtiles"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mbtiles>",
	Short: "Print per-zoom and overall tile size statistics",
	Long: `Scan every tile row of an MBTiles archive and print tile counts, total
sizes, and maximum tile sizes, bucketed per zoom level, together with the
geographic extent the tiles of each level cover.

Examples:
  # Print a statistics table
  mbtiles-inspect inspect world.mbtiles

  # Machine-readable output
  mbtiles-inspect inspect world.mbtiles --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("json", false, "emit the report as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	path := args[0]
	if err := ensureMbtilesPath(path); err != nil {
		return err
	}

	store, err := mbtiles.Open(path, cfg.Scan)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Infof("inspecting %s", path)
	start := time.Now()

	report, err := mbtiles.Inspect(store, newReporter(cfg, "Tiles: "))
	if err != nil {
		return err
	}

	logger.Infof("scanned %d tiles in %.3fs", report.Overall.TileCount, time.Since(start).Seconds())

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return renderReportJSON(report)
	}
	renderReportTable(report)
	return nil
}

// renderReportJSON writes the report to stdout as indented JSON
func renderReportJSON(report *mbtiles.Report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// renderReportTable writes the report to stdout as a fixed-width table
func renderReportTable(report *mbtiles.Report) {
	fmt.Printf("%5s %12s %12s %12s  %s\n", "zoom", "tiles", "total", "max", "extent")
	for _, entry := range report.ByZoom {
		bound := entry.Extent.GeoBound(entry.Zoom)
		fmt.Printf("%5d %12d %12s %12s  %.4f,%.4f,%.4f,%.4f\n",
			entry.Zoom,
			entry.Stats.TileCount,
			formatBytes(entry.Stats.TotalBytes),
			formatBytes(entry.Stats.MaxBytes),
			bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1])
	}
	fmt.Printf("%5s %12d %12s %12s\n", "all",
		report.Overall.TileCount,
		formatBytes(report.Overall.TotalBytes),
		formatBytes(report.Overall.MaxBytes))
}

// formatBytes renders a byte count with a binary unit suffix
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for q := n / unit; q >= unit; q /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
