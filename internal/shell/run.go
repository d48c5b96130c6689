// Package shell is the process boundary of mvn-release: every external
// tool (git, mvn, xmllint) is invoked through a Runner.
//
// The Runner interface exists so the git and maven wrappers can be tested
// with fake runners that record invocations instead of spawning processes.
// The production implementation shells out with os/exec, capturing stderr
// into the returned error the same way the command would surface it in a
// terminal.
package shell

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one external command in a working directory and returns
// its stdout. A non-zero exit status is reported as a non-nil error that
// includes the command's stderr.
type Runner interface {
	Run(dir, name string, args ...string) (string, error)
}

// Exec is the production Runner backed by os/exec.
//
// Trace, when non-nil, receives one line per invocation before the command
// runs. The CLI wires this to its verbose logger.
type Exec struct {
	Trace func(format string, args ...interface{})
}

// Run executes name with args in dir, blocking until it exits.
// Stdout and stderr are captured separately so stderr can be folded into
// the error message while stdout is returned on success.
func (e *Exec) Run(dir, name string, args ...string) (string, error) {
	if e.Trace != nil {
		e.Trace("exec: %s %s", name, strings.Join(args, " "))
	}

	// #nosec G204 — command names and arguments are assembled internally,
	// not taken verbatim from user input.
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := fmt.Sprintf("%s %s failed", name, strings.Join(args, " "))
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg = fmt.Sprintf("%s: %s", msg, s)
		}
		return "", fmt.Errorf("%s: %w", msg, err)
	}

	return stdout.String(), nil
}

// LookPath reports whether name resolves to an executable on PATH.
// It is a seam over exec.LookPath so the dependency checker can be tested
// without manipulating the test host's PATH.
var LookPath = func(name string) error {
	_, err := exec.LookPath(name)
	return err
}
