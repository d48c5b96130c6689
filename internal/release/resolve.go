package release

import (
	"fmt"

	"github.com/shinji-kodama/mvn-release/internal/model"
	"github.com/shinji-kodama/mvn-release/internal/prompt"
	"github.com/shinji-kodama/mvn-release/internal/version"
)

// VersionSource yields the project's current version. Satisfied by
// maven.Client; tests substitute a stub.
type VersionSource interface {
	CurrentVersion() (string, error)
}

// ResolveOptions carries the operator's flag inputs into the resolver.
// Empty strings mean "not supplied"; prompt.Auto selects the computed
// default without asking.
type ResolveOptions struct {
	// CurrentOverride skips the pom query and trusts this value as the
	// current project version (-c).
	CurrentOverride string

	// ReleaseVersion is the -r flag value.
	ReleaseVersion string

	// NextVersion is the -n flag value.
	NextVersion string
}

// Resolver computes the ReleasePlan from the pom, the flags and the
// operator's answers. It performs no git or Maven mutations — a resolver
// failure always leaves the repository untouched.
type Resolver struct {
	Source VersionSource
	Prompt *prompt.Prompter

	// Suffix is the pre-release marker, "-SNAPSHOT" by convention.
	Suffix string
}

// Resolve produces the plan and enforces the two version invariants:
// the release version must differ from the current version, and the
// suffixed next version must differ from the suffixed release version.
func (r *Resolver) Resolve(opts ResolveOptions) (*model.ReleasePlan, error) {
	current := opts.CurrentOverride
	if current == "" {
		var err error
		current, err = r.Source.CurrentVersion()
		if err != nil {
			return nil, err
		}
	}

	releaseDefault := version.StripSuffix(current, r.Suffix)

	releaseVersion, err := r.Prompt.Resolve("Release version", opts.ReleaseVersion, releaseDefault)
	if err != nil {
		return nil, err
	}

	if releaseVersion == current {
		return nil, fmt.Errorf("release version %q equals the current project version — the project is not on a %s version, nothing to release", releaseVersion, r.Suffix)
	}

	nextDefault, incErr := version.Increment(releaseVersion)
	if incErr != nil && (opts.NextVersion == "" || opts.NextVersion == prompt.Auto) {
		// The default is needed (prompt or auto) but cannot be computed;
		// the operator must pass -n explicitly.
		return nil, fmt.Errorf("cannot derive a next version: %w", incErr)
	}

	nextVersion, err := r.Prompt.Resolve("Next development version", opts.NextVersion, nextDefault)
	if err != nil {
		return nil, err
	}
	nextVersion = version.NextDevelopment(nextVersion, r.Suffix)

	if nextVersion == releaseVersion+r.Suffix {
		return nil, fmt.Errorf("next development version %q equals the release version plus %s — the bump would be a no-op", nextVersion, r.Suffix)
	}

	return &model.ReleasePlan{
		CurrentVersion: current,
		ReleaseVersion: releaseVersion,
		NextVersion:    nextVersion,
	}, nil
}
