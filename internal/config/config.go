// Package config loads tool settings from a TOML file and Jira credentials
// from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/SediDeVone/jira-release-commit-extractor/internal/jira"
)

// ErrMissingCredentials indicates JIRA_USERNAME or JIRA_API_TOKEN is unset.
// This is checked before any network or repository access.
var ErrMissingCredentials = errors.New("JIRA_USERNAME and JIRA_API_TOKEN environment variables must be set")

const defaultBaseURL = "https://your-jira-instance.atlassian.net"

type Config struct {
	Jira   JiraConfig   `toml:"jira"`
	Script ScriptConfig `toml:"script"`
}

type JiraConfig struct {
	BaseURL  string `toml:"base_url"`
	PageSize int    `toml:"page_size"`
}

type ScriptConfig struct {
	// MergeStrategy is the side handed to `git cherry-pick -X`. The
	// conflict policy is operational, not part of the pipeline, so it is
	// configurable rather than hard-coded.
	MergeStrategy string `toml:"merge_strategy"`
	// OutputTemplate names the generated script; %s is the release id.
	OutputTemplate string `toml:"output_template"`
}

func DefaultConfig() *Config {
	return &Config{
		Jira: JiraConfig{
			BaseURL:  defaultBaseURL,
			PageSize: jira.DefaultPageSize,
		},
		Script: ScriptConfig{
			MergeStrategy:  "theirs",
			OutputTemplate: "cherry_pick_release_%s.sh",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "jrce.toml"), nil
}

// Load reads the config file, falling back to defaults when it is absent.
// A missing file is written back best effort so the defaults are visible.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Jira.PageSize <= 0 {
		cfg.Jira.PageSize = jira.DefaultPageSize
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Credentials resolves Jira credentials from the environment. JIRA_BASE_URL
// overrides the configured base URL when set; username and token have no
// config fallback and their absence is fatal at startup.
func (c *Config) Credentials() (jira.Credentials, error) {
	creds := jira.Credentials{
		BaseURL:  c.Jira.BaseURL,
		Username: os.Getenv("JIRA_USERNAME"),
		APIToken: os.Getenv("JIRA_API_TOKEN"),
	}
	if base := os.Getenv("JIRA_BASE_URL"); base != "" {
		creds.BaseURL = base
	}
	if creds.Username == "" || creds.APIToken == "" {
		return jira.Credentials{}, ErrMissingCredentials
	}
	return creds, nil
}
