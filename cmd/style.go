// cmd/style.go - Style document commands
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/mbtiles_inspect/internal"
	"github.com/valpere/mbtiles_inspect/pkg/style"
)

// styleCmd represents the style command
var styleCmd = &cobra.Command{
	Use:   "style <style.json>",
	Short: "List style source-layers or resolve visibility at a zoom",
	Long: `Parse a Mapbox style document and either list the source-layers its
layers reference, or answer whether a named source-layer produces visible
output at a given zoom level.

A source-layer counts as visible when at least one of its style layers admits
the zoom (minzoom inclusive, maxzoom exclusive, layout visibility not "none")
and none of its recognized paint properties resolves to zero there.

Examples:
  # List referenced source-layers
  mbtiles-inspect style basic.json

  # Resolve visibility for one source-layer
  mbtiles-inspect style basic.json --layer water --zoom 9`,
	Args: cobra.ExactArgs(1),
	RunE: runStyle,
}

func init() {
	rootCmd.AddCommand(styleCmd)

	styleCmd.Flags().String("layer", "", "source-layer name to resolve")
	styleCmd.Flags().Int("zoom", 0, "zoom level to resolve at")

	styleCmd.MarkFlagsRequiredTogether("layer", "zoom")
}

func runStyle(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}

	doc, err := style.LoadFile(args[0])
	if err != nil {
		var parseErr *style.ParseError
		switch {
		case errors.Is(err, style.ErrNoSourceLayers):
			return internal.NewError(internal.ErrorCodeNoSourceLayers,
				fmt.Sprintf("style %s references no source-layers", args[0]), err)
		case errors.As(err, &parseErr):
			return internal.NewError(internal.ErrorCodeStyleParse,
				fmt.Sprintf("failed to parse style %s", args[0]), err)
		}
		return err
	}

	layer, _ := cmd.Flags().GetString("layer")
	if layer == "" {
		for _, name := range doc.SourceLayerNames() {
			fmt.Println(name)
		}
		return nil
	}

	zoom, _ := cmd.Flags().GetInt("zoom")
	if zoom < 0 || zoom > 255 {
		return fmt.Errorf("zoom must be in [0, 255], got %d", zoom)
	}

	visible := doc.IsVisibleAtZoom(layer, uint8(zoom))
	logger.Debugf("resolved %s at zoom %d: %t", layer, zoom, visible)
	if visible {
		fmt.Println("visible")
	} else {
		fmt.Println("hidden")
	}
	return nil
}
