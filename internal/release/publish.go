package release

import (
	"fmt"

	"github.com/shinji-kodama/mvn-release/internal/config"
	"github.com/shinji-kodama/mvn-release/internal/git"
	"github.com/shinji-kodama/mvn-release/internal/maven"
	"github.com/shinji-kodama/mvn-release/internal/model"
)

// Publisher drives the mutating half of the release: cutting the release
// branch, setting the version, committing, pushing, merging to trunk,
// tagging — and afterwards merging back and bumping to the next
// development version.
type Publisher struct {
	Git   *git.Client
	Maven *maven.Client
	Cfg   *config.Config

	// Trunk is the resolved trunk branch name (config value or detected).
	Trunk string

	// Log receives verbose trace lines when non-nil.
	Log func(format string, args ...interface{})
}

func (p *Publisher) pipeline() *Pipeline {
	return &Pipeline{
		// The bounded rollback: undo exactly the release commit.
		Rollback: func() error { return p.Git.ResetHard("HEAD~1") },
		Log:      p.Log,
	}
}

// Publish runs the release sequence. After the pure existing-tag
// precondition it walks the states
//
//	release-branch-created, version-set, committed, pushed-release,
//	trunk-merged, pushed-trunk, tagged, tags-pushed
//
// where every transition is a terminal failure point whose cleanup is
// decided by the step's failure policy. The push of the release branch is
// the point of no return: from there on a commit exists that a plain
// abort would strand.
func (p *Publisher) Publish(plan *model.ReleasePlan) error {
	tag := plan.Tag(p.Cfg.TagPrefix)
	releaseBranch := plan.ReleaseBranch(p.Cfg.ReleaseBranchPrefix)

	// Pure precondition — nothing has been mutated yet.
	exists, err := p.Git.TagExists(tag)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("tag %q already exists; delete it or pick another release version", tag)
	}

	steps := []Step{
		{
			Name:    "create release branch",
			Failure: model.PolicyAbort,
			Run: func() error {
				if err := p.Git.CreateBranch(releaseBranch, p.Cfg.DevelopBranch); err != nil {
					return err
				}
				// Expected no-op when the branch is freshly cut, but keeps
				// a pre-existing release branch current.
				return p.Git.Merge(p.Cfg.DevelopBranch)
			},
		},
		{
			Name:    "set release version",
			Failure: model.PolicyAbort,
			Run:     func() error { return p.Maven.SetVersion(plan.ReleaseVersion) },
		},
		{
			Name:    "commit release version",
			Failure: model.PolicyAbort,
			Run:     func() error { return p.Git.CommitAll(fmt.Sprintf("Release version %s", plan.ReleaseVersion)) },
		},
		{
			Name:    "push release branch",
			Failure: model.PolicyRollback,
			Run:     func() error { return p.Git.Push(p.Cfg.Remote, releaseBranch, true) },
		},
		{
			Name:    "merge release branch into trunk",
			Failure: model.PolicyRollback,
			Run: func() error {
				if err := p.Git.Checkout(p.Trunk); err != nil {
					return err
				}
				return p.Git.Merge(releaseBranch)
			},
		},
		{
			Name:    "push trunk",
			Failure: model.PolicyRollback,
			Run:     func() error { return p.Git.Push(p.Cfg.Remote, p.Trunk, false) },
		},
		{
			Name:    "tag release",
			Failure: model.PolicyManual,
			Run:     func() error { return p.Git.Tag(tag) },
		},
		{
			Name:    "push tags",
			Failure: model.PolicyManual,
			Run:     func() error { return p.Git.PushTags(p.Cfg.Remote) },
		},
	}

	return p.pipeline().Execute(steps)
}

// BumpNext prepares future work after a successful release: merge trunk
// back into the development branch and commit the next development
// version. The release itself already succeeded, so nothing here is ever
// rolled back — any failure is a manual follow-up.
func (p *Publisher) BumpNext(plan *model.ReleasePlan) error {
	steps := []Step{
		{
			Name:    "check out development branch",
			Failure: model.PolicyManual,
			Run:     func() error { return p.Git.Checkout(p.Cfg.DevelopBranch) },
		},
		{
			Name:    "merge trunk into development branch",
			Failure: model.PolicyManual,
			Run:     func() error { return p.Git.Merge(p.Trunk) },
		},
		{
			Name:    "set next development version",
			Failure: model.PolicyManual,
			Run:     func() error { return p.Maven.SetVersion(plan.NextVersion) },
		},
		{
			Name:    "commit next development version",
			Failure: model.PolicyManual,
			Run:     func() error { return p.Git.CommitAll(fmt.Sprintf("Prepare next development version %s", plan.NextVersion)) },
		},
		{
			Name:    "push development branch",
			Failure: model.PolicyManual,
			Run:     func() error { return p.Git.Push(p.Cfg.Remote, p.Cfg.DevelopBranch, false) },
		},
	}

	return p.pipeline().Execute(steps)
}
