package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*Prompter, *strings.Builder) {
	out := &strings.Builder{}
	return &Prompter{In: strings.NewReader(input), Out: out}, out
}

func TestResolveExplicitWins(t *testing.T) {
	p, out := newPrompter("should-not-be-read\n")

	got, err := p.Resolve("Release version", "2.5.0", "2.0")
	require.NoError(t, err)
	assert.Equal(t, "2.5.0", got)
	// No prompt must be written when the flag already decided the value.
	assert.Empty(t, out.String())
}

func TestResolveAutoUsesDefaultWithoutPrompting(t *testing.T) {
	p, out := newPrompter("")

	got, err := p.Resolve("Release version", Auto, "2.0")
	require.NoError(t, err)
	assert.Equal(t, "2.0", got)
	assert.Empty(t, out.String())
}

func TestResolveEmptyInputAcceptsDefault(t *testing.T) {
	p, out := newPrompter("\n")

	got, err := p.Resolve("Release version", "", "2.0")
	require.NoError(t, err)
	assert.Equal(t, "2.0", got)
	assert.Contains(t, out.String(), "[2.0]")
}

func TestResolvePromptAnswerOverridesDefault(t *testing.T) {
	p, _ := newPrompter("3.0.0-rc1\n")

	got, err := p.Resolve("Release version", "", "2.0")
	require.NoError(t, err)
	assert.Equal(t, "3.0.0-rc1", got)
}

func TestResolveTrimsWhitespace(t *testing.T) {
	p, _ := newPrompter("  2.1  \n")

	got, err := p.Resolve("Release version", "", "2.0")
	require.NoError(t, err)
	assert.Equal(t, "2.1", got)
}

func TestConsecutivePromptsEachGetTheirAnswer(t *testing.T) {
	p, _ := newPrompter("2.0\n2.1\n")

	first, err := p.Resolve("Release version", "", "1.9")
	require.NoError(t, err)
	second, err := p.Resolve("Next development version", "", "2.0.1")
	require.NoError(t, err)

	assert.Equal(t, "2.0", first)
	assert.Equal(t, "2.1", second)
}

func TestResolveEOFActsAsEmptyAnswer(t *testing.T) {
	p, _ := newPrompter("")

	got, err := p.Resolve("Next version", "", "2.1-SNAPSHOT")
	require.NoError(t, err)
	assert.Equal(t, "2.1-SNAPSHOT", got)
}
