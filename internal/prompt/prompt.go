// Package prompt implements the interactive input of the release flow.
//
// The resolution rule is the same for every value the operator can
// influence: prefer an explicit flag value, treat the literal "auto" as
// "take the computed default without asking", and otherwise ask on the
// terminal with the default pre-filled so that an empty answer accepts it.
//
// Reader and writer are injected so the behavior is testable without a
// real terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Auto is the sentinel flag value that selects the computed default
// without prompting. The -a shorthand sets it for both versions.
const Auto = "auto"

// Prompter reads operator answers from In and writes questions to Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// scanner wraps In once; a per-read scanner would buffer ahead and
	// swallow the answer to the following prompt.
	scanner *bufio.Scanner
}

// Resolve applies the resolution rule for one value.
//
// explicit is the flag value ("" when the flag was not given), def the
// computed default. An explicit non-sentinel value wins outright; the
// sentinel short-circuits to the default; otherwise the operator is
// prompted and an empty line accepts the default.
func (p *Prompter) Resolve(label, explicit, def string) (string, error) {
	switch {
	case explicit == Auto:
		return def, nil
	case explicit != "":
		return explicit, nil
	}

	fmt.Fprintf(p.Out, "%s [%s]: ", label, def)

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// AwaitEnter blocks until the operator presses enter. The bumper calls it
// once at the very end so the summary stays on screen in terminals that
// close on exit.
func (p *Prompter) AwaitEnter(msg string) error {
	fmt.Fprintf(p.Out, "%s", msg)
	_, err := p.readLine()
	return err
}

func (p *Prompter) readLine() (string, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		// EOF on stdin counts as an empty answer, matching the behavior
		// of a plain `read` with closed input.
		return "", nil
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
