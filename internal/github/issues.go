package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alan/gmeek-pub/cmd"
	"github.com/google/go-github/v57/github"
)

// CreateIssue opens a new issue in repo
func (c *Client) CreateIssue(ctx context.Context, repo cmd.RepoID, payload IssuePayload) (*Issue, error) {
	var issue github.Issue

	slog.Debug("GitHub API: Creating issue", "repo", repo.String(), "title", payload.Title)
	path := fmt.Sprintf("%s/issues", repo)
	if err := c.Do(ctx, http.MethodPost, path, payload.request(), &issue); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	return toIssue(&issue), nil
}

// UpdateIssue replaces the title, body and labels of an existing issue
func (c *Client) UpdateIssue(ctx context.Context, repo cmd.RepoID, number int, payload IssuePayload) (*Issue, error) {
	var issue github.Issue

	slog.Debug("GitHub API: Updating issue", "repo", repo.String(), "issue", number)
	path := fmt.Sprintf("%s/issues/%d", repo, number)
	if err := c.Do(ctx, http.MethodPatch, path, payload.request(), &issue); err != nil {
		return nil, fmt.Errorf("failed to update issue #%d: %w", number, err)
	}

	return toIssue(&issue), nil
}

// request converts the payload to the go-github wire type. Labels are always
// sent so an update with no labels clears them.
func (p IssuePayload) request() *github.IssueRequest {
	labels := p.Labels
	if labels == nil {
		labels = []string{}
	}
	return &github.IssueRequest{
		Title:  github.String(p.Title),
		Body:   github.String(p.Body),
		Labels: &labels,
	}
}

func toIssue(issue *github.Issue) *Issue {
	return &Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
		State:  issue.GetState(),
	}
}
