package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand()

	for flag, shorthand := range map[string]string{
		"auto":             "a",
		"release-version":  "r",
		"next-version":     "n",
		"current-version":  "c",
		"ignore-untracked": "i",
	} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag --%s must be registered", flag)
		assert.Equal(t, shorthand, f.Shorthand)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestRootCommandRejectsUnknownFlag(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--bogus"})

	// Parsing fails before RunE, so no release logic runs.
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestRootCommandRejectsPositionalArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"1.2.3"})

	err := cmd.Execute()
	assert.Error(t, err)
}
