// Package gitremote detects the GitHub repository a working directory publishes to.
package gitremote

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	"github.com/alan/gmeek-pub/cmd"
	"github.com/go-git/go-git/v5"
)

// Resolver finds the repository for the current checkout.
// It reports false when no repository can be determined.
type Resolver interface {
	ResolveRemote(ctx context.Context) (cmd.RepoID, bool)
}

// CommandRunner runs an external command and returns its standard output
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CLIResolver asks the git binary for the remote URL
type CLIResolver struct {
	Remote string
	Host   string
	Run    CommandRunner
}

// NewCLIResolver creates a resolver that shells out to git
func NewCLIResolver(remote, host string) *CLIResolver {
	return &CLIResolver{Remote: remote, Host: host, Run: ExecRunner}
}

// ResolveRemote runs git config --get remote.<name>.url
func (r *CLIResolver) ResolveRemote(ctx context.Context) (cmd.RepoID, bool) {
	key := fmt.Sprintf("remote.%s.url", r.Remote)
	output, err := r.Run(ctx, "git", "config", "--get", key)
	if err != nil {
		slog.Debug("git config lookup failed", "key", key, "error", err)
		return cmd.RepoID{}, false
	}

	remoteURL := strings.TrimSpace(string(output))
	id, ok := ParseRemoteURL(remoteURL, r.Host)
	if !ok {
		slog.Debug("Remote URL does not point at a known host", "url", remoteURL, "host", r.Host)
	}
	return id, ok
}

// RepositoryResolver reads the remote from the repository's git config
// without needing the git binary
type RepositoryResolver struct {
	Dir    string
	Remote string
	Host   string
}

// NewRepositoryResolver creates a resolver for the repository containing dir
func NewRepositoryResolver(dir, remote, host string) *RepositoryResolver {
	return &RepositoryResolver{Dir: dir, Remote: remote, Host: host}
}

// ResolveRemote opens the enclosing repository and parses the remote's first URL
func (r *RepositoryResolver) ResolveRemote(_ context.Context) (cmd.RepoID, bool) {
	repo, err := git.PlainOpenWithOptions(r.Dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("Failed to open git repository", "dir", r.Dir, "error", err)
		return cmd.RepoID{}, false
	}

	remote, err := repo.Remote(r.Remote)
	if err != nil {
		slog.Debug("Failed to read git remote", "remote", r.Remote, "error", err)
		return cmd.RepoID{}, false
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return cmd.RepoID{}, false
	}
	return ParseRemoteURL(urls[0], r.Host)
}

// Chain tries each resolver in order and returns the first answer
type Chain []Resolver

// ResolveRemote implements Resolver
func (c Chain) ResolveRemote(ctx context.Context) (cmd.RepoID, bool) {
	for _, r := range c {
		if id, ok := r.ResolveRemote(ctx); ok {
			return id, true
		}
	}
	return cmd.RepoID{}, false
}

// Static always resolves to the same repository
type Static cmd.RepoID

// ResolveRemote implements Resolver
func (s Static) ResolveRemote(_ context.Context) (cmd.RepoID, bool) {
	id := cmd.RepoID(s)
	return id, !id.IsZero()
}

// ParseRemoteURL extracts owner and repo from a remote URL on host.
// Supports:
//   - https://github.com/owner/repo(.git)
//   - ssh://git@github.com/owner/repo(.git)
//   - git@github.com:owner/repo(.git)
//   - github.com:owner/repo
func ParseRemoteURL(remoteURL, host string) (cmd.RepoID, bool) {
	pattern := regexp.MustCompile(regexp.QuoteMeta(host) + `[:/]([^/]+)/(\S+)`)
	matches := pattern.FindStringSubmatch(remoteURL)
	if len(matches) != 3 {
		return cmd.RepoID{}, false
	}

	name := strings.TrimSuffix(matches[2], ".git")
	if name == "" {
		return cmd.RepoID{}, false
	}
	return cmd.RepoID{Owner: matches[1], Name: name}, true
}
