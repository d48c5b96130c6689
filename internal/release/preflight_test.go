package release

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/mvn-release/internal/config"
	"github.com/shinji-kodama/mvn-release/internal/git"
	"github.com/shinji-kodama/mvn-release/internal/shell"
)

// stubLookPath replaces shell.LookPath for the duration of a test,
// resolving only the listed tool names.
func stubLookPath(t *testing.T, available ...string) {
	t.Helper()

	prev := shell.LookPath
	shell.LookPath = func(name string) error {
		for _, a := range available {
			if name == a {
				return nil
			}
		}
		return fmt.Errorf("%s: executable file not found in $PATH", name)
	}
	t.Cleanup(func() { shell.LookPath = prev })
}

func TestCheckToolsAllPresent(t *testing.T) {
	stubLookPath(t, "git", "mvn", "xmllint")
	r := &scriptRunner{out: map[string]string{"xmllint": "--xpath expr\n"}}

	assert.NoError(t, CheckTools(config.Default(), r))
}

func TestCheckToolsNamesTheMissingTool(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		wantIn    string
	}{
		{"missing git", []string{"mvn", "xmllint"}, "git"},
		{"missing maven", []string{"git", "xmllint"}, "mvn"},
		{"missing xmllint", []string{"git", "mvn"}, "xmllint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLookPath(t, tt.available...)
			r := &scriptRunner{out: map[string]string{"xmllint": "--xpath expr\n"}}

			err := CheckTools(config.Default(), r)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestCheckToolsVerifiesOverrideInsteadOfMvn(t *testing.T) {
	stubLookPath(t, "git", "xmllint", "./mvnw")
	cfg := config.Default()
	cfg.MavenCommand = "./mvnw -B"
	r := &scriptRunner{out: map[string]string{"xmllint": "--xpath expr\n"}}

	assert.NoError(t, CheckTools(cfg, r))
}

func TestCheckToolsRejectsXPathlessXmllint(t *testing.T) {
	stubLookPath(t, "git", "mvn", "xmllint")
	// Usage text without the flag, the way an old libxml2 build reports it.
	r := &scriptRunner{fail: map[string]error{"xmllint": errors.New("usage: xmllint [options] XMLfiles")}}

	err := CheckTools(config.Default(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--xpath")
}

func TestGuardWorkingTreePassesOnCleanTree(t *testing.T) {
	r := &scriptRunner{}
	assert.NoError(t, GuardWorkingTree(git.NewClient("/repo", r), false))
}

func TestGuardWorkingTreeFailsOnAnyStatusLine(t *testing.T) {
	for n, out := range map[int]string{
		1: " M pom.xml\n",
		2: " M pom.xml\n?? scratch.txt\n",
	} {
		r := &scriptRunner{out: map[string]string{"status": out}}

		err := GuardWorkingTree(git.NewClient("/repo", r), false)
		require.Error(t, err, "expected failure with %d dirty entries", n)
		assert.Contains(t, err.Error(), "commit or stash")
		assert.Contains(t, err.Error(), "pom.xml")
	}
}

func TestGuardWorkingTreeSelectsStatusMode(t *testing.T) {
	r := &scriptRunner{}
	g := git.NewClient("/repo", r)

	require.NoError(t, GuardWorkingTree(g, false))
	require.NoError(t, GuardWorkingTree(g, true))

	require.Len(t, r.calls, 2)
	assert.Equal(t, []string{"git", "status", "--porcelain"}, r.calls[0])
	assert.Equal(t, []string{"git", "status", "--porcelain", "-uno"}, r.calls[1])
}
