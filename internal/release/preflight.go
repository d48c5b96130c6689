package release

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/mvn-release/internal/config"
	"github.com/shinji-kodama/mvn-release/internal/git"
	"github.com/shinji-kodama/mvn-release/internal/maven"
	"github.com/shinji-kodama/mvn-release/internal/shell"
)

// CheckTools verifies every external collaborator before anything runs:
// git, the (possibly overridden) Maven command, and an xmllint with
// --xpath support. All failures here are pre-flight — no mutation has
// happened and none will.
func CheckTools(cfg *config.Config, runner shell.Runner) error {
	if err := shell.LookPath("git"); err != nil {
		return fmt.Errorf("git is not available on PATH: %w", err)
	}

	mvnName, _ := cfg.MavenArgv()
	if err := shell.LookPath(mvnName); err != nil {
		return fmt.Errorf("build tool %q does not resolve; install Maven or fix %s: %w", mvnName, config.EnvMavenCommand, err)
	}

	if err := shell.LookPath("xmllint"); err != nil {
		return fmt.Errorf("xmllint is not available on PATH: %w", err)
	}
	if !maven.SupportsXPath(runner) {
		return fmt.Errorf("the installed xmllint does not support --xpath; install a libxml2 build with XPath support")
	}

	return nil
}

// GuardWorkingTree aborts when the checkout has pending changes.
// With ignoreUntracked, untracked files are tolerated. This must run
// before any mutation: the pipelines assume the release commit is the
// only local change they create.
func GuardWorkingTree(g *git.Client, ignoreUntracked bool) error {
	lines, err := g.Status(ignoreUntracked)
	if err != nil {
		return err
	}

	if len(lines) > 0 {
		return fmt.Errorf("the working tree has uncommitted changes; commit or stash them first:\n%s", strings.Join(lines, "\n"))
	}
	return nil
}
