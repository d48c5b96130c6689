// Package git wraps the git CLI operations the release flow needs.
//
// All operations shell out to the git binary rather than using a Git
// library (e.g. go-git). The release flow drives the operator's existing
// checkout, remotes, credential helpers and merge configuration — exactly
// the behavior they see in their own terminal — and library reimplementations
// of merge and push diverge from that in the corners that matter here.
//
// The Client is stateless apart from the repository directory and the
// injected command runner; tests substitute a fake runner to observe
// the exact git invocations.
package git

import (
	"errors"
	"strings"

	"github.com/shinji-kodama/mvn-release/internal/shell"
)

// Client runs git commands against one repository working directory.
type Client struct {
	dir string
	run shell.Runner
}

// NewClient returns a Client operating on the repository at dir.
func NewClient(dir string, runner shell.Runner) *Client {
	return &Client{dir: dir, run: runner}
}

func (c *Client) git(args ...string) (string, error) {
	return c.run.Run(c.dir, "git", args...)
}

// Status returns the non-empty porcelain status lines of the working tree.
// With ignoreUntracked, untracked files are excluded from the listing
// (git status --porcelain -uno); otherwise every change and untracked
// entry is reported.
func (c *Client) Status(ignoreUntracked bool) ([]string, error) {
	args := []string{"status", "--porcelain"}
	if ignoreUntracked {
		args = append(args, "-uno")
	}

	out, err := c.git(args...)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// CurrentBranch returns the short name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	out, err := c.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// BranchExists reports whether branch resolves to a local ref.
// Only the exit status of rev-parse --verify matters.
func (c *Client) BranchExists(branch string) bool {
	_, err := c.git("rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// TagExists reports whether a tag with the given name already exists.
// `git tag -l <name>` exits zero either way, so presence is judged from
// the output instead of the exit status.
func (c *Client) TagExists(tag string) (bool, error) {
	out, err := c.git("tag", "-l", tag)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CreateBranch creates and checks out a new branch starting at start.
func (c *Client) CreateBranch(branch, start string) error {
	_, err := c.git("checkout", "-b", branch, start)
	return err
}

// Checkout switches the working tree to an existing branch.
func (c *Client) Checkout(branch string) error {
	_, err := c.git("checkout", branch)
	return err
}

// Merge merges ref into the current branch. Merging an already-merged ref
// is a no-op for git and therefore not an error here.
func (c *Client) Merge(ref string) error {
	_, err := c.git("merge", ref)
	return err
}

// CommitAll commits every pending change with the given message
// (git commit -a -m).
func (c *Client) CommitAll(message string) error {
	_, err := c.git("commit", "-a", "-m", message)
	return err
}

// Push pushes branch to remote. With setUpstream the branch's upstream is
// recorded (-u), which the release branch wants on its first push.
func (c *Client) Push(remote, branch string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	args = append(args, remote, branch)

	_, err := c.git(args...)
	return err
}

// Tag creates a lightweight tag at HEAD.
func (c *Client) Tag(name string) error {
	_, err := c.git("tag", name)
	return err
}

// PushTags pushes all tags to remote.
func (c *Client) PushTags(remote string) error {
	_, err := c.git("push", "--tags", remote)
	return err
}

// ResetHard discards the working tree and moves the current branch to ref.
// The pipeline uses it with "HEAD~1" to undo exactly the release commit.
func (c *Client) ResetHard(ref string) error {
	_, err := c.git("reset", "--hard", ref)
	return err
}

// DetectTrunk resolves the trunk branch name for repositories that did not
// pin one in their config: "master" when it exists, else "main".
func (c *Client) DetectTrunk() (string, error) {
	if c.BranchExists("master") {
		return "master", nil
	}
	if c.BranchExists("main") {
		return "main", nil
	}
	return "", errors.New("neither a master nor a main branch exists; set trunkBranch in .mvnrelease.yaml")
}
