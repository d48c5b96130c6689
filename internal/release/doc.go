// Package release implements the release workflow itself: the pre-flight
// checks (external tools, clean working tree), the version resolver that
// produces a ReleasePlan, and the two step pipelines — publisher and
// next-version bumper — that drive git and Maven through the git-flow
// release sequence.
//
// The pipelines are ordered step lists where every step carries a failure
// policy (abort / rollback / manual). A small runner executes them in
// order, stops at the first failure and dispatches the step's policy.
// The point of no return is the push of the release branch: from there
// until the tag exists, failures undo exactly the release commit; once
// anything has reached the remote beyond that, cleanup is the operator's.
package release
