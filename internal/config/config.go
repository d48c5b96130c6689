// Package config loads the optional per-repository configuration of
// mvn-release.
//
// The file is looked up in the repository root under the names
// .mvnrelease.yaml, .mvnrelease.yml, .mvnrelease.jsonc and .mvnrelease.json
// (first match wins). The JSON variants are parsed as JSONC — comments are
// stripped with github.com/tidwall/jsonc before handing the bytes to
// encoding/json — so operators can annotate their release setup.
//
// Every field is optional; zero values fall back to the conventional
// git-flow/Maven defaults applied by Default and ApplyDefaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvMavenCommand overrides the Maven invocation, beating both the default
// and the config file. It may contain arguments, e.g. "./mvnw -B".
const EnvMavenCommand = "MVN_RELEASE_MVN_COMMAND"

// candidates are the recognized config file names, in lookup order.
var candidates = []string{
	".mvnrelease.yaml",
	".mvnrelease.yml",
	".mvnrelease.jsonc",
	".mvnrelease.json",
}

// Config describes the branch topology and tool invocations of one
// repository's release setup.
type Config struct {
	// DevelopBranch is the branch ongoing work lives on.
	DevelopBranch string `json:"developBranch" yaml:"developBranch"`

	// TrunkBranch is the released lineage. Empty means detect:
	// "master" if it exists, else "main".
	TrunkBranch string `json:"trunkBranch" yaml:"trunkBranch"`

	// ReleaseBranchPrefix is prepended to the release version to name the
	// transient release branch.
	ReleaseBranchPrefix string `json:"releaseBranchPrefix" yaml:"releaseBranchPrefix"`

	// TagPrefix is prepended to the release version to name the tag.
	TagPrefix string `json:"tagPrefix" yaml:"tagPrefix"`

	// Remote is the git remote everything is pushed to.
	Remote string `json:"remote" yaml:"remote"`

	// SnapshotSuffix marks development versions, "-SNAPSHOT" by default.
	SnapshotSuffix string `json:"snapshotSuffix" yaml:"snapshotSuffix"`

	// MavenCommand is the build tool invocation, split on whitespace.
	// Overridden by the MVN_RELEASE_MVN_COMMAND environment variable.
	MavenCommand string `json:"mavenCommand" yaml:"mavenCommand"`

	// PomFile is the project descriptor the current version is read from.
	PomFile string `json:"pomFile" yaml:"pomFile"`
}

// Default returns the conventional configuration: git-flow branch names,
// origin remote, v-prefixed tags and stock Maven.
func Default() *Config {
	return &Config{
		DevelopBranch:       "develop",
		ReleaseBranchPrefix: "release/",
		TagPrefix:           "v",
		Remote:              "origin",
		SnapshotSuffix:      "-SNAPSHOT",
		MavenCommand:        "mvn",
		PomFile:             "pom.xml",
	}
}

// Load reads the configuration for the repository rooted at dir.
// A missing config file is not an error — the defaults are returned.
// The environment override is applied last in all cases.
func Load(dir string) (*Config, error) {
	cfg := Default()

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if err := unmarshal(name, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		break
	}

	cfg.ApplyDefaults()

	if env := strings.TrimSpace(os.Getenv(EnvMavenCommand)); env != "" {
		cfg.MavenCommand = env
	}

	return cfg, nil
}

// unmarshal decodes data into cfg according to the file extension.
func unmarshal(name string, data []byte, cfg *Config) error {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		// JSONC: strip comments and trailing commas, then standard JSON.
		return json.Unmarshal(jsonc.ToJSON(data), cfg)
	}
}

// ApplyDefaults fills any zero-valued field with its conventional default.
// TrunkBranch is intentionally left empty — an empty value means "detect
// from the repository" and is resolved by the caller against git.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.DevelopBranch == "" {
		c.DevelopBranch = def.DevelopBranch
	}
	if c.ReleaseBranchPrefix == "" {
		c.ReleaseBranchPrefix = def.ReleaseBranchPrefix
	}
	if c.TagPrefix == "" {
		c.TagPrefix = def.TagPrefix
	}
	if c.Remote == "" {
		c.Remote = def.Remote
	}
	if c.SnapshotSuffix == "" {
		c.SnapshotSuffix = def.SnapshotSuffix
	}
	if c.MavenCommand == "" {
		c.MavenCommand = def.MavenCommand
	}
	if c.PomFile == "" {
		c.PomFile = def.PomFile
	}
}

// MavenArgv splits the Maven invocation into the executable name and any
// leading arguments, e.g. "./mvnw -B" → ("./mvnw", ["-B"]).
func (c *Config) MavenArgv() (string, []string) {
	fields := strings.Fields(c.MavenCommand)
	if len(fields) == 0 {
		return "mvn", nil
	}
	return fields[0], fields[1:]
}
