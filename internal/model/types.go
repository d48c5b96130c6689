package model

import (
	"fmt"
	"strings"
)

// FailurePolicy describes what the pipeline runner must do when a step
// fails. Every step in the release pipeline is tagged with exactly one
// policy; the runner dispatches on it after the first non-zero result.
//
// The policies mirror the three phases of a release:
//
//	PolicyAbort    — nothing has been pushed yet; just stop.
//	PolicyRollback — a release commit exists locally (and possibly on the
//	                 release branch remotely); undo exactly one commit,
//	                 then stop.
//	PolicyManual   — shared history has already been pushed; automatic
//	                 rollback is unsafe, so stop and tell the operator
//	                 which step to finish by hand.
type FailurePolicy int

const (
	// PolicyAbort terminates with no cleanup. Used for every step before
	// the release commit is pushed.
	PolicyAbort FailurePolicy = iota

	// PolicyRollback undoes the most recent commit (reset --hard HEAD~1)
	// before terminating. Used between the release push and the tag.
	PolicyRollback

	// PolicyManual terminates with an instruction to complete the step
	// manually. Used once the release is on the remote.
	PolicyManual
)

// String returns a short human-readable name for the policy.
func (p FailurePolicy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicyRollback:
		return "rollback"
	case PolicyManual:
		return "manual"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ReleasePlan holds the fully resolved inputs of one release run.
// It is produced by the version resolver and consumed read-only by the
// publisher and the next-version bumper.
type ReleasePlan struct {
	// CurrentVersion is the version currently recorded in the pom
	// (or supplied via the -c override). Typically a snapshot,
	// e.g. "1.4.0-SNAPSHOT".
	CurrentVersion string

	// ReleaseVersion is the version being released, e.g. "1.4.0".
	// Invariant: differs from CurrentVersion.
	ReleaseVersion string

	// NextVersion is the next development version including the snapshot
	// suffix, e.g. "1.4.1-SNAPSHOT". Invariant: differs from
	// ReleaseVersion plus the same suffix.
	NextVersion string
}

// ReleaseBranch derives the transient release branch name for the plan.
func (p *ReleasePlan) ReleaseBranch(prefix string) string {
	return prefix + p.ReleaseVersion
}

// Tag derives the release tag name for the plan.
func (p *ReleasePlan) Tag(prefix string) string {
	return prefix + p.ReleaseVersion
}

// Describe renders the plan for operator confirmation output.
func (p *ReleasePlan) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current version:  %s\n", p.CurrentVersion)
	fmt.Fprintf(&b, "Release version:  %s\n", p.ReleaseVersion)
	fmt.Fprintf(&b, "Next version:     %s", p.NextVersion)
	return b.String()
}

// ExitCode defines the CLI exit codes. The external contract is
// deliberately small: success, or failure. Finer-grained diagnostics go
// to stderr, not into the exit status.
type ExitCode int

const (
	// ExitSuccess indicates the release completed (or help was requested).
	ExitSuccess ExitCode = 0

	// ExitError indicates a validation failure, a missing dependency, or
	// an unrecoverable external-command failure.
	ExitError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
