package main

import (
	"fmt"
	"os"

	"github.com/lwertel/gridpack/internal/cli"
	"github.com/lwertel/gridpack/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
