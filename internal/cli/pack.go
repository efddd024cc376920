package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lwertel/gridpack/pkg/grid"
)

// layoutFile is the JSON shape accepted by file-based commands.
type layoutFile struct {
	Bounds grid.Bounds `json:"bounds"`
	Layout grid.Layout `json:"layout"`
}

// readLayoutFile loads and validates a layout JSON file.
func readLayoutFile(path string) (*layoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var f layoutFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := f.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// newPackCmd creates the pack command.
func newPackCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack <layout.json>",
		Short: "Repack a layout file to minimize vertical extent",
		Long: `Pack reads a layout JSON file, repacks its widgets toward the top-left
to minimize the occupied rows, and writes the result. Widget sizes are
never changed; only positions move. A layout that is already optimal is
returned unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			f, err := readLayoutFile(args[0])
			if err != nil {
				return err
			}

			before := f.Layout.MaxY()
			packed, err := grid.Repack(f.Layout, f.Bounds)
			if err != nil {
				return fmt.Errorf("repack: %w", err)
			}
			f.Layout = packed

			data, err := json.MarshalIndent(f, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			dest := args[0]
			if output != "" {
				dest = output
			}
			if dest == "-" {
				cmd.Print(string(data))
			} else if err := os.WriteFile(dest, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}

			prog.done(fmt.Sprintf("Repacked %d widgets", len(packed)))
			if dest != "-" {
				printSuccess("Packed %d widgets: %d rows %s %d rows", len(packed), before, iconArrow, packed.MaxY())
				printFile(dest)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to in-place, - for stdout)")
	return cmd
}
