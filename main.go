package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/mdu/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by the linker
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		// Per-path errors have already been reported as they happened
		if !errors.Is(err, cli.ErrIncomplete) {
			fmt.Fprintf(os.Stderr, "mdu: %v\n", err)
		}

		os.Exit(1)
	}
}
