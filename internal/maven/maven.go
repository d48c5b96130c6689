// Package maven wraps the two external tools that touch the project
// descriptor: the Maven versions plugin, which rewrites the version across
// all pom files, and xmllint, which reads the current version back out.
//
// The pom is never parsed or written by this program directly — version
// rewriting stays with `mvn versions:set` so that multi-module projects
// and property-driven versions behave exactly as Maven defines them.
package maven

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/mvn-release/internal/shell"
)

// versionXPath extracts the /project/version text node regardless of the
// pom's xmlns declaration. A namespace-blind query like /project/version
// fails on the common xmlns="http://maven.apache.org/POM/4.0.0" poms.
const versionXPath = "/*[local-name()='project']/*[local-name()='version']/text()"

// Client invokes Maven and xmllint for one repository.
type Client struct {
	dir  string
	name string   // maven executable, possibly overridden ("mvn", "./mvnw", ...)
	args []string // leading arguments carried by the override, e.g. "-B"
	pom  string
	run  shell.Runner
}

// NewClient returns a Client for the repository at dir. name and args come
// from config.MavenArgv; pom is the project descriptor path relative to dir.
func NewClient(dir, name string, args []string, pom string, runner shell.Runner) *Client {
	return &Client{dir: dir, name: name, args: args, pom: pom, run: runner}
}

// SetVersion rewrites the project version across all pom files via the
// versions plugin. Backup pom generation is disabled so the working tree
// holds nothing but the intended change when the release commit is made.
func (c *Client) SetVersion(version string) error {
	args := append(append([]string{}, c.args...),
		"versions:set",
		"-DnewVersion="+version,
		"-DgenerateBackupPoms=false",
	)

	if _, err := c.run.Run(c.dir, c.name, args...); err != nil {
		return fmt.Errorf("setting project version to %s: %w", version, err)
	}
	return nil
}

// CurrentVersion reads the version text node from the pom with xmllint.
func (c *Client) CurrentVersion() (string, error) {
	out, err := c.run.Run(c.dir, "xmllint", "--xpath", versionXPath, c.pom)
	if err != nil {
		return "", fmt.Errorf("reading project version from %s: %w", c.pom, err)
	}

	v := strings.TrimSpace(out)
	if v == "" {
		return "", fmt.Errorf("no version element found in %s", c.pom)
	}
	return v, nil
}

// SupportsXPath probes xmllint for --xpath support. Old libxml2 builds
// lack the flag, and the failure mode without this check would be a
// confusing mid-run query error instead of a pre-flight diagnostic.
//
// xmllint invoked without arguments prints its usage text and exits
// non-zero, so the probe inspects both the captured output and the error.
func SupportsXPath(runner shell.Runner) bool {
	out, err := runner.Run("", "xmllint")
	text := out
	if err != nil {
		text += err.Error()
	}
	return strings.Contains(text, "--xpath")
}
