// Package main is the entry point for the mvn-release CLI.
//
// All functionality lives in the internal/cli package; this binary only
// injects the build-time version information and hands off to cobra.
package main

import (
	"github.com/shinji-kodama/mvn-release/internal/cli"
)

// version, commit and date are set by the release build via ldflags.
// During development they keep their defaults.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
