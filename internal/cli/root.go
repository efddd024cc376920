package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lwertel/gridpack/pkg/catalog"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	storeAddr   string
	catalogPath string
}

// Execute runs the gridpack CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var verbose bool
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "gridpack",
		Short:        "Gridpack packs and edits dashboard grid layouts",
		Long:         `Gridpack is a CLI tool for managing 2D dashboard grid layouts: packing widgets tightly, inserting new ones with automatic adjustment, and resolving collisions by pushing, shrinking, or swapping neighbors.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gridpack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&flags.storeAddr, "store", "",
		"layout store address (file://DIR, redis://ADDR, mongodb://URI, memory://)")
	root.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "",
		"widget catalog TOML file (built-in catalog when empty)")

	root.AddCommand(newPackCmd())
	root.AddCommand(newAddCmd(flags))
	root.AddCommand(newStoreCmd(flags))
	root.AddCommand(newRenderCmd(flags))
	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newServeCmd(flags))

	return root.ExecuteContext(context.Background())
}

// loadCatalog resolves the widget catalog from the --catalog flag.
func (f *rootFlags) loadCatalog() (*catalog.Catalog, error) {
	if f.catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(f.catalogPath)
}
