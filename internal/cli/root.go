// Package cli implements the cobra-based command surface of mvn-release.
//
// The tool is a single linear pipeline, so the root command does the work
// itself instead of fanning out into subcommands: parse flags, check
// tools, guard the working tree, resolve versions, publish the release,
// bump to the next development version.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/mvn-release/internal/model"
)

// verbose enables trace output on stderr for every external command
// invocation and pipeline step.
var verbose bool

// Version, Commit and Date are set at build time via ldflags.
// They are injected from the main package for the --version flag output.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// releaseFlags holds the parsed flag values of one run.
// Populating it is the argument parser's only side effect.
type releaseFlags struct {
	auto            bool   // -a: both versions from computed defaults
	releaseVersion  string // -r: release version, or "auto"
	nextVersion     string // -n: next development version, or "auto"
	currentVersion  string // -c: trust this as the current project version
	ignoreUntracked bool   // -i: guard ignores untracked files
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &releaseFlags{}

	rootCmd := &cobra.Command{
		Use:   "mvn-release",
		Short: "Git-flow release automation for Maven projects",
		Long: `mvn-release cuts a release of a Maven-managed project following the
git-flow branch topology: it creates a release branch from develop, sets
the release version with mvn versions:set, commits and pushes, merges to
the trunk branch, tags, and finally bumps develop to the next -SNAPSHOT
version.

The working tree must be clean and the release tag must not exist yet;
both are verified before anything is mutated. A push failure after the
release commit rolls back exactly that commit.

Examples:
  mvn-release                    # prompt for release and next version
  mvn-release -a                 # accept the computed defaults
  mvn-release -r 1.4.0 -n 1.5.0  # fully scripted
  mvn-release -c 1.4.0-SNAPSHOT  # skip the pom query`,

		// Errors are formatted by Execute; cobra must not print usage or
		// errors on its own.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelease(flags)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.auto, "auto", "a", false, "use the computed defaults for both versions without prompting")
	rootCmd.Flags().StringVarP(&flags.releaseVersion, "release-version", "r", "", `release version, or "auto" for the computed default`)
	rootCmd.Flags().StringVarP(&flags.nextVersion, "next-version", "n", "", `next development version, or "auto" for the computed default`)
	rootCmd.Flags().StringVarP(&flags.currentVersion, "current-version", "c", "", "trust this as the current project version instead of querying the pom")
	rootCmd.Flags().BoolVarP(&flags.ignoreUntracked, "ignore-untracked", "i", false, "let the working-tree guard ignore untracked files")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "trace external command invocations")

	// SilenceUsage suppresses usage output on runtime errors, but an
	// unrecognized flag should still show the operator what is accepted.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(os.Stderr, cmd.UsageString())
		return err
	})

	return rootCmd
}

// Execute runs the root command and translates errors into exit codes.
// CLIError values carry their own code; anything else exits 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Error())
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error())
		os.Exit(int(model.ExitError))
	}
}

// printError writes a diagnostic to stderr, with the prefix colored when
// stderr is a terminal (fatih/color handles the detection).
func printError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), message)
}

// VerboseLog prints a trace line to stderr when --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
