package release

import (
	"fmt"

	"github.com/shinji-kodama/mvn-release/internal/model"
)

// Step is one external action of the release sequence, tagged with the
// policy the runner applies when it fails.
type Step struct {
	// Name identifies the step in diagnostics ("push release branch").
	Name string

	// Failure selects the cleanup behavior on a non-nil Run result.
	Failure model.FailurePolicy

	// Run performs the action.
	Run func() error
}

// Pipeline executes steps strictly in order, stopping at the first
// failure. There are no retries; every retry is the operator's.
type Pipeline struct {
	// Rollback undoes the release commit. It is invoked at most once,
	// only for a step tagged PolicyRollback.
	Rollback func() error

	// Log receives a trace line per step when non-nil.
	Log func(format string, args ...interface{})
}

// Execute runs the steps until one fails or all succeed.
//
// On failure the step's policy decides the shape of the returned error:
// abort returns the failure as-is, rollback performs the bounded undo
// first, and manual annotates the error with the follow-up instruction.
func (p *Pipeline) Execute(steps []Step) error {
	for _, step := range steps {
		if p.Log != nil {
			p.Log("step: %s", step.Name)
		}

		err := step.Run()
		if err == nil {
			continue
		}

		switch step.Failure {
		case model.PolicyRollback:
			if p.Rollback != nil {
				if rbErr := p.Rollback(); rbErr != nil {
					return fmt.Errorf("%s failed (%w); rollback also failed: %v — repository state needs manual inspection", step.Name, err, rbErr)
				}
			}
			return fmt.Errorf("%s failed: %w; the release commit was rolled back, the working tree is back in its pre-release state", step.Name, err)

		case model.PolicyManual:
			return fmt.Errorf("%s failed: %w; the release itself is already pushed — complete this step manually", step.Name, err)

		default:
			return fmt.Errorf("%s failed: %w", step.Name, err)
		}
	}
	return nil
}
