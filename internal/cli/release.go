// release.go implements the release run itself, top to bottom:
//
//  1. Load the repository configuration (.mvnrelease.*, env override)
//  2. Verify external tools (git, Maven, xmllint with --xpath)
//  3. Guard the working tree — abort on any pending change
//  4. Resolve current/release/next versions (flags, prompts, defaults)
//  5. Publish the release (branch, versions:set, commit, push, merge,
//     tag — with the bounded rollback past the point of no return)
//  6. Bump develop to the next development version
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/shinji-kodama/mvn-release/internal/config"
	"github.com/shinji-kodama/mvn-release/internal/git"
	"github.com/shinji-kodama/mvn-release/internal/maven"
	"github.com/shinji-kodama/mvn-release/internal/model"
	"github.com/shinji-kodama/mvn-release/internal/prompt"
	"github.com/shinji-kodama/mvn-release/internal/release"
	"github.com/shinji-kodama/mvn-release/internal/shell"
)

// runRelease executes the whole pipeline in the current directory.
func runRelease(flags *releaseFlags) error {
	// -a is shorthand for -r auto -n auto; explicit flags win.
	if flags.auto {
		if flags.releaseVersion == "" {
			flags.releaseVersion = prompt.Auto
		}
		if flags.nextVersion == "" {
			flags.nextVersion = prompt.Auto
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitError, "failed to get current directory", err)
	}

	runner := &shell.Exec{Trace: VerboseLog}

	cfg, err := config.Load(dir)
	if err != nil {
		return model.WrapCLIError(model.ExitError, "failed to load configuration", err)
	}
	VerboseLog("config: develop=%s trunk=%q remote=%s maven=%q", cfg.DevelopBranch, cfg.TrunkBranch, cfg.Remote, cfg.MavenCommand)

	// Pre-flight: tools first, then the working tree. Nothing below this
	// point runs against a dirty checkout or a missing tool.
	if err := release.CheckTools(cfg, runner); err != nil {
		return model.WrapCLIError(model.ExitError, "dependency check failed", err)
	}

	g := git.NewClient(dir, runner)

	if err := release.GuardWorkingTree(g, flags.ignoreUntracked); err != nil {
		return err
	}
	fmt.Printf("%s working tree clean\n", color.GreenString("✔"))

	trunk := cfg.TrunkBranch
	if trunk == "" {
		trunk, err = g.DetectTrunk()
		if err != nil {
			return err
		}
	}
	VerboseLog("trunk branch: %s", trunk)

	mvnName, mvnArgs := cfg.MavenArgv()
	m := maven.NewClient(dir, mvnName, mvnArgs, cfg.PomFile, runner)

	prompter := &prompt.Prompter{In: os.Stdin, Out: os.Stdout}

	resolver := &release.Resolver{Source: m, Prompt: prompter, Suffix: cfg.SnapshotSuffix}
	plan, err := resolver.Resolve(release.ResolveOptions{
		CurrentOverride: flags.currentVersion,
		ReleaseVersion:  flags.releaseVersion,
		NextVersion:     flags.nextVersion,
	})
	if err != nil {
		return err
	}

	fmt.Println(plan.Describe())

	publisher := &release.Publisher{
		Git:   g,
		Maven: m,
		Cfg:   cfg,
		Trunk: trunk,
		Log:   VerboseLog,
	}

	if err := publisher.Publish(plan); err != nil {
		return err
	}
	fmt.Printf("%s released %s (tag %s)\n", color.GreenString("✔"), plan.ReleaseVersion, plan.Tag(cfg.TagPrefix))

	if err := publisher.BumpNext(plan); err != nil {
		return err
	}
	fmt.Printf("%s %s is now at %s\n", color.GreenString("✔"), cfg.DevelopBranch, plan.NextVersion)

	// Keep the summary on screen in terminals that close on exit.
	// EOF (e.g. a scripted run) counts as acknowledgment.
	return prompter.AwaitEnter("Press enter to exit... ")
}
