// Package model defines the domain types and value objects for the
// mvn-release CLI.
//
// This package contains pure data structures with no external dependencies:
// the resolved release plan, the per-step failure policies of the release
// pipeline, exit codes (ExitCode) and a custom error type (CLIError) that
// carries exit codes for proper OS process exit handling.
//
// Nothing in here outlives the process — the only durable state of a
// release run lives in the Git repository and the Maven pom itself.
package model
