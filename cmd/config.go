// Package cmd defines core data structures for gmeek-pub configuration and repository identity.
package cmd

import (
	"fmt"
	"strings"
)

const (
	// DefaultConfigFile is the optional per-directory configuration file
	DefaultConfigFile = ".gmeek-pub.yaml"
	// DefaultRemote is the git remote used to detect the target repository
	DefaultRemote = "origin"
	// DefaultHost is the git host whose remotes are recognized
	DefaultHost = "github.com"
	// DefaultAPIURL is the GitHub REST API root
	DefaultAPIURL = "https://api.github.com/"
	// DefaultTokenEnv is the environment variable holding the API token
	DefaultTokenEnv = "GITHUB_TOKEN"
)

// Config represents the structure of .gmeek-pub.yaml
type Config struct {
	Repo     string `yaml:"repo,omitempty"`      // owner/name, skips git detection when set
	Remote   string `yaml:"remote,omitempty"`    // git remote name
	Host     string `yaml:"host,omitempty"`      // git host matched in remote URLs
	APIURL   string `yaml:"api_url,omitempty"`   // REST API root, override for GitHub Enterprise
	TokenEnv string `yaml:"token_env,omitempty"` // environment variable holding the token
}

// WithDefaults returns a copy of the config with empty fields filled in
func (c Config) WithDefaults() Config {
	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.TokenEnv == "" {
		c.TokenEnv = DefaultTokenEnv
	}
	return c
}

// Merge returns a copy of the config with the non-empty fields of overrides applied
func (c Config) Merge(overrides Config) Config {
	if overrides.Repo != "" {
		c.Repo = overrides.Repo
	}
	if overrides.Remote != "" {
		c.Remote = overrides.Remote
	}
	if overrides.Host != "" {
		c.Host = overrides.Host
	}
	if overrides.APIURL != "" {
		c.APIURL = overrides.APIURL
	}
	if overrides.TokenEnv != "" {
		c.TokenEnv = overrides.TokenEnv
	}
	return c
}

// RepoID addresses a GitHub repository
type RepoID struct {
	Owner string
	Name  string
}

// String returns the owner/name form used in API paths
func (r RepoID) String() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether the identifier is unset
func (r RepoID) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// ParseRepoID parses an owner/name string as typed by a user
func ParseRepoID(s string) (RepoID, error) {
	s = strings.TrimSpace(s)
	owner, name, ok := strings.Cut(s, "/")
	name = strings.TrimSuffix(name, ".git")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoID{}, fmt.Errorf("invalid repository %q, expected owner/repo", s)
	}
	return RepoID{Owner: owner, Name: name}, nil
}
