// pathscope - directory listing and shared credentials lookup
package main

import (
	"os"

	"github.com/rescale/pathscope/internal/cli"
	"github.com/rescale/pathscope/internal/version"
)

// Version information, overridden at build time with -ldflags.
var (
	Version   = "v0.3.0"
	BuildTime = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
