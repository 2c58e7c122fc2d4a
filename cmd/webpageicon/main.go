package main

import (
	"runtime"

	"github.com/bnema/webpageicon/internal/cli/cmd"
	"github.com/bnema/webpageicon/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.Execute(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
}
