package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lwertel/gridpack/pkg/render"
	"github.com/lwertel/gridpack/pkg/store"
)

// newRenderCmd creates the render command.
func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		output    string
		cellSize  int
		gridLines bool
	)

	cmd := &cobra.Command{
		Use:   "render <layout-name>",
		Short: "Generate an SVG snapshot of a stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			st, err := store.Open(ctx, flags.storeAddr)
			if err != nil {
				return err
			}
			defer st.Close()

			doc, err := st.Get(ctx, name)
			if err != nil {
				return fmt.Errorf("load layout %s: %w", name, err)
			}

			opts := []render.SVGOption{render.WithLabels(), render.WithCellSize(cellSize)}
			if gridLines {
				opts = append(opts, render.WithGridLines())
			}
			svg := render.RenderSVG(doc.Layout, doc.Bounds, opts...)

			dest := output
			if dest == "" {
				dest = name + ".svg"
			}
			if dest == "-" {
				cmd.Print(string(svg))
				return nil
			}
			if !strings.HasSuffix(dest, ".svg") {
				dest += ".svg"
			}
			if err := os.WriteFile(dest, svg, 0644); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}

			printSuccess("Rendered %d widgets", len(doc.Layout))
			printFile(dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to <name>.svg, - for stdout)")
	cmd.Flags().IntVar(&cellSize, "cell", 40, "rendered cell size in pixels")
	cmd.Flags().BoolVar(&gridLines, "grid", false, "draw the cell grid behind the widgets")
	return cmd
}
