package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lwertel/gridpack/pkg/grid"
	"github.com/lwertel/gridpack/pkg/store"
)

// newAddCmd creates the add command.
func newAddCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <layout-name> <widget-type>",
		Short: "Insert a widget into a stored layout with auto-adjust",
		Long: `Add instantiates a widget of the given catalog type and finds room for
it in the stored layout, repacking and shrinking neighbors down to their
minimum sizes when the grid is tight. The layout is saved back to the
store on success.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			name, typ := args[0], args[1]

			cat, err := flags.loadCatalog()
			if err != nil {
				return err
			}
			st, err := store.Open(ctx, flags.storeAddr)
			if err != nil {
				return err
			}
			defer st.Close()

			doc, err := st.Get(ctx, name)
			if err != nil {
				return fmt.Errorf("load layout %s: %w", name, err)
			}

			rect, err := cat.Instantiate(typ)
			if err != nil {
				return err
			}

			mins := doc.MinSizes
			if mins == nil {
				mins = cat.MinSizesFor(doc.Layout)
			}

			prog := newProgress(logger)
			res, err := grid.AutoAdjust(doc.Layout, doc.Bounds, rect.W, rect.H, mins)
			if err != nil {
				return fmt.Errorf("no room for %s in %s: %w", typ, name, err)
			}
			prog.done(fmt.Sprintf("Placed %s", rect.ID))

			doc.Layout = append(res.Layout, rect.MoveTo(res.Pos.X, res.Pos.Y))
			if err := st.Put(ctx, doc); err != nil {
				return fmt.Errorf("save layout %s: %w", name, err)
			}

			printSuccess("Added %s at (%d,%d)", rect.ID, res.Pos.X, res.Pos.Y)
			if len(res.Shrunk) > 0 {
				printWarning("Shrunk %d widget(s) to make room: %v", len(res.Shrunk), res.Shrunk)
			}
			return nil
		},
	}
	return cmd
}
