package main

import (
	"os"

	"github.com/philipseo/purge-deps/cmd"
)

// Set by the release build via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
