package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.DevelopBranch)
	assert.Equal(t, "", cfg.TrunkBranch, "trunk stays empty so the caller detects master/main")
	assert.Equal(t, "release/", cfg.ReleaseBranchPrefix)
	assert.Equal(t, "v", cfg.TagPrefix)
	assert.Equal(t, "origin", cfg.Remote)
	assert.Equal(t, "-SNAPSHOT", cfg.SnapshotSuffix)
	assert.Equal(t, "mvn", cfg.MavenCommand)
	assert.Equal(t, "pom.xml", cfg.PomFile)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mvnrelease.yaml", `
developBranch: dev
trunkBranch: main
tagPrefix: ""
mavenCommand: ./mvnw -B
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.DevelopBranch)
	assert.Equal(t, "main", cfg.TrunkBranch)
	// Empty-string fields in the file still fall back to defaults;
	// only absence of the whole file and absence of a field behave alike.
	assert.Equal(t, "v", cfg.TagPrefix)
	assert.Equal(t, "./mvnw -B", cfg.MavenCommand)
	// Unset fields keep their defaults.
	assert.Equal(t, "origin", cfg.Remote)
}

func TestLoadJSONCStripsComments(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mvnrelease.jsonc", `{
	// the CI remote, not origin
	"remote": "upstream",
	"snapshotSuffix": "-dev",
}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, "-dev", cfg.SnapshotSuffix)
}

func TestLoadFirstCandidateWins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mvnrelease.yaml", "remote: from-yaml\n")
	writeConfig(t, dir, ".mvnrelease.json", `{"remote": "from-json"}`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.Remote)
}

func TestEnvOverrideBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mvnrelease.yaml", "mavenCommand: ./mvnw\n")
	t.Setenv(EnvMavenCommand, "mvn -q -B")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "mvn -q -B", cfg.MavenCommand)

	name, args := cfg.MavenArgv()
	assert.Equal(t, "mvn", name)
	assert.Equal(t, []string{"-q", "-B"}, args)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".mvnrelease.yml", "remote: [unclosed\n")

	_, err := Load(dir)
	assert.Error(t, err)
}
