package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lwertel/gridpack/pkg/errors"
	"github.com/lwertel/gridpack/pkg/grid"
	"github.com/lwertel/gridpack/pkg/render"
	"github.com/lwertel/gridpack/pkg/store"
)

// newStoreCmd creates the store management command.
func newStoreCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect and manage persisted layouts",
	}

	cmd.AddCommand(newStoreCreateCmd(flags))
	cmd.AddCommand(newStoreListCmd(flags))
	cmd.AddCommand(newStoreShowCmd(flags))
	cmd.AddCommand(newStoreDeleteCmd(flags))

	return cmd
}

// newStoreCreateCmd creates the "store create" subcommand.
func newStoreCreateCmd(flags *rootFlags) *cobra.Command {
	var cols, rows int

	cmd := &cobra.Command{
		Use:   "create <layout-name>",
		Short: "Create an empty layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			if err := errors.ValidateLayoutName(name); err != nil {
				return err
			}
			if err := errors.ValidateBounds(cols, rows); err != nil {
				return err
			}

			st, err := store.Open(ctx, flags.storeAddr)
			if err != nil {
				return err
			}
			defer st.Close()

			if _, err := st.Get(ctx, name); err == nil {
				return errors.New(errors.ErrCodeInvalidLayout, "layout %q already exists", name)
			}

			doc := &store.Document{
				Name:   name,
				Bounds: grid.Bounds{Cols: cols, MaxRows: rows},
			}
			if err := st.Put(ctx, doc); err != nil {
				return err
			}
			printSuccess("Created %s (%dx%d grid)", name, cols, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 12, "grid column count")
	cmd.Flags().IntVar(&rows, "rows", 100, "maximum grid rows")
	return cmd
}

// newStoreListCmd creates the "store list" subcommand.
func newStoreListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored layout names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := store.Open(ctx, flags.storeAddr)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("No stored layouts")
				return nil
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
}

// newStoreShowCmd creates the "store show" subcommand.
func newStoreShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <layout-name>",
		Short: "Print a stored layout as a cell map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := store.Open(ctx, flags.storeAddr)
			if err != nil {
				return err
			}
			defer st.Close()

			doc, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}

			printInfo("%s: %dx%d grid, %d widgets, version %d",
				doc.Name, doc.Bounds.Cols, doc.Bounds.MaxRows, len(doc.Layout), doc.Version)
			for _, r := range doc.Layout {
				printDetail("%-24s (%d,%d) %dx%d", r.ID, r.X, r.Y, r.W, r.H)
			}
			if m := render.RenderASCII(doc.Layout, doc.Bounds); m != "" {
				fmt.Println()
				fmt.Println(m)
			}
			return nil
		},
	}
}

// newStoreDeleteCmd creates the "store delete" subcommand.
func newStoreDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <layout-name>",
		Short: "Delete a stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := store.Open(ctx, flags.storeAddr)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
