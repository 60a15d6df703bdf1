package entities

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	logger "github.com/sirupsen/logrus"
)

const (
	// ConfigFileName is the project file the settings section is read from.
	ConfigFileName = "pyproject.toml"
	// ConfigSection is the table inside ConfigFileName holding the settings.
	ConfigSection = "tool.python-project-tools"
	// EnvPrefix marks environment variables overriding file settings,
	// e.g. PROJECT_TOOLS_START_COMMIT for "start-commit".
	EnvPrefix = "PROJECT_TOOLS_"

	GitBackendCLI   = "cli"
	GitBackendGoGit = "go-git"

	DefaultRemote              = "origin"
	DefaultReleaseCandidateTag = "release-candidate"
	DefaultRefEnvVar           = "GITHUB_REF"
	DefaultIndexURL            = "https://www.pypi.org/pypi"
	DefaultRequirementsFile    = "requirements.txt"
)

// Settings is the configuration shared by both tools.
type Settings struct {
	// StartCommit anchors the history walk while no release tag exists.
	StartCommit         string `koanf:"start-commit"`
	Remote              string `koanf:"remote"`
	ReleaseCandidateTag string `koanf:"release-candidate-tag"`
	// ReleaseCandidateRef defaults to "refs/tags/<ReleaseCandidateTag>".
	ReleaseCandidateRef string `koanf:"release-candidate-ref"`
	// RefEnvVar names the variable the CI exposes the current ref in.
	RefEnvVar        string `koanf:"ref-env-var"`
	GitBackend       string `koanf:"git-backend"`
	IndexURL         string `koanf:"index-url"`
	RequirementsFile string `koanf:"requirements-file"`

	ProjectDir string `koanf:"-"`
}

// SettingsOptions tells NewSettings where to look.
type SettingsOptions struct {
	ProjectDir string
	ConfigPath string // Explicit config file; must exist when set
}

// NewSettings loads defaults, then the pyproject.toml section, then the
// PROJECT_TOOLS_* environment variables, later sources taking precedence.
func NewSettings(opts SettingsOptions) (*Settings, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	k := koanf.New(".")
	loadDefaults(k)

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		found, err := FindConfigFile(projectDir)
		if err != nil {
			logger.Debugf("No %s found, using defaults: %v", ConfigFileName, err)
		}
		cfgPath = found
	}

	if cfgPath != "" {
		if err := loadConfigFile(k, cfgPath); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	settings.ProjectDir = projectDir
	if settings.ReleaseCandidateRef == "" {
		settings.ReleaseCandidateRef = "refs/tags/" + settings.ReleaseCandidateTag
	}

	if err := validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// FindConfigFile returns the path of the project config file in projectDir.
func FindConfigFile(projectDir string) (string, error) {
	p := filepath.Join(projectDir, ConfigFileName)
	info, err := os.Stat(p)
	if err != nil {
		return "", fmt.Errorf("config file not found: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config file %q is a directory", p)
	}
	return p, nil
}

// RequirementsPath resolves the configured requirements file against the
// project directory.
func (s *Settings) RequirementsPath() string {
	if filepath.IsAbs(s.RequirementsFile) {
		return s.RequirementsFile
	}
	return filepath.Join(s.ProjectDir, s.RequirementsFile)
}

// OnReleaseCandidate reports whether ref is the release-candidate ref.
func (s *Settings) OnReleaseCandidate(ref string) bool {
	return ref == s.ReleaseCandidateRef
}

func loadDefaults(k *koanf.Koanf) {
	defaults := map[string]any{
		"start-commit":          "",
		"remote":                DefaultRemote,
		"release-candidate-tag": DefaultReleaseCandidateTag,
		"release-candidate-ref": "",
		"ref-env-var":           DefaultRefEnvVar,
		"git-backend":           GitBackendCLI,
		"index-url":             DefaultIndexURL,
		"requirements-file":     DefaultRequirementsFile,
	}
	for key, value := range defaults {
		_ = k.Set(key, value)
	}
}

// loadConfigFile merges the ConfigSection table of a TOML file into k.
func loadConfigFile(k *koanf.Koanf, path string) error {
	raw := koanf.New(".")
	if err := raw.Load(file.Provider(path), tomlParser{}); err != nil {
		return fmt.Errorf("failed to load config file %q: %w", path, err)
	}
	if !raw.Exists(ConfigSection) {
		logger.Debugf("No [%s] section in %s", ConfigSection, path)
		return nil
	}
	if err := k.Merge(raw.Cut(ConfigSection)); err != nil {
		return fmt.Errorf("failed to merge config file %q: %w", path, err)
	}
	logger.Debugf("Loaded settings from %s", path)
	return nil
}

// envTransform maps PROJECT_TOOLS_START_COMMIT to "start-commit".
func envTransform(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

func validate(s *Settings) error {
	if s.Remote == "" {
		return errors.New("remote must not be empty")
	}
	if s.ReleaseCandidateTag == "" {
		return errors.New("release-candidate-tag must not be empty")
	}
	if s.IndexURL == "" {
		return errors.New("index-url must not be empty")
	}
	if s.RequirementsFile == "" {
		return errors.New("requirements-file must not be empty")
	}
	return nil
}

// tomlParser implements koanf.Parser on top of BurntSushi/toml.
type tomlParser struct{}

func (tomlParser) Unmarshal(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (tomlParser) Marshal(data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
