// Package publish creates or updates the GitHub issue backing a local Markdown document.
//
// The first successful run creates an issue and records its number in the
// document's front matter as issue_number. Every later run finds that key and
// updates the same issue instead.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/alan/gmeek-pub/cmd"
	"github.com/alan/gmeek-pub/internal/commands"
	"github.com/alan/gmeek-pub/internal/github"
	"github.com/alan/gmeek-pub/internal/gitremote"
	"github.com/alan/gmeek-pub/internal/prompt"
)

// RepoPrompt is shown when the repository cannot be detected
const RepoPrompt = "Or enter repository manually (owner/repo): "

// IssueService is the part of the GitHub client the publisher needs
type IssueService interface {
	CreateIssue(ctx context.Context, repo cmd.RepoID, payload github.IssuePayload) (*github.Issue, error)
	UpdateIssue(ctx context.Context, repo cmd.RepoID, number int, payload github.IssuePayload) (*github.Issue, error)
}

// Settings is the explicit configuration of a publish run
type Settings struct {
	Token    string
	TokenEnv string     // named in the error when Token is empty
	Repo     cmd.RepoID // skips detection when set
	DryRun   bool       // report the planned action without calling the API or writing the file
}

// Action is the outcome of a run
type Action string

const (
	// ActionCreated means a new issue was opened
	ActionCreated Action = "created"
	// ActionUpdated means an existing issue was edited
	ActionUpdated Action = "updated"
	// ActionPlanned means a dry run stopped before calling the API
	ActionPlanned Action = "planned"
)

// Result describes a finished run
type Result struct {
	Action      Action
	Repo        cmd.RepoID
	Number      int
	URL         string
	FileUpdated bool   // issue_number was written back to the document
	Warning     string // set when the issue number could not be recorded
}

// Publisher publishes documents to one GitHub repository per run
type Publisher struct {
	settings Settings
	issues   IssueService
	resolver gitremote.Resolver
	prompter prompt.Prompter
	out      io.Writer
}

// New creates a Publisher
func New(settings Settings, issues IssueService, resolver gitremote.Resolver, prompter prompt.Prompter, out io.Writer) *Publisher {
	if out == nil {
		out = io.Discard
	}
	return &Publisher{
		settings: settings,
		issues:   issues,
		resolver: resolver,
		prompter: prompter,
		out:      out,
	}
}

// Run publishes the document at path
func (p *Publisher) Run(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	if p.settings.Token == "" && !p.settings.DryRun {
		return nil, &MissingTokenError{Env: p.settings.TokenEnv}
	}

	repo, err := p.resolveRepository(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "Target Repository: %s\n", repo)

	content, err := os.ReadFile(path) //nolint:gosec // Document path is from command-line argument
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := ParseDocument(string(content))
	if err != nil {
		return nil, err
	}
	slog.Debug("Parsed document", "path", path, "title", doc.Title, "labels", doc.Labels, "issue", doc.IssueNumber)

	if p.settings.DryRun {
		return p.plan(repo, doc), nil
	}

	if doc.Published() {
		return p.update(ctx, repo, doc)
	}
	return p.create(ctx, repo, doc, path, info.Mode().Perm())
}

// resolveRepository picks the configured repository, then the git remote,
// then asks the user
func (p *Publisher) resolveRepository(ctx context.Context) (cmd.RepoID, error) {
	if !p.settings.Repo.IsZero() {
		return p.settings.Repo, nil
	}

	if p.resolver != nil {
		if repo, ok := p.resolver.ResolveRemote(ctx); ok {
			slog.Debug("Detected repository from git", "repo", repo.String())
			return repo, nil
		}
	}

	fmt.Fprintln(p.out, "Could not detect repository from git config.")
	fmt.Fprintln(p.out, "Please make sure you are running inside a git repository linked to GitHub.")
	if p.prompter == nil {
		return cmd.RepoID{}, ErrNoRepository
	}

	answer, err := p.prompter.Prompt(RepoPrompt)
	if err != nil {
		return cmd.RepoID{}, fmt.Errorf("failed to read repository: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return cmd.RepoID{}, ErrNoRepository
	}

	return cmd.ParseRepoID(answer)
}

func (p *Publisher) update(ctx context.Context, repo cmd.RepoID, doc *Document) (*Result, error) {
	fmt.Fprintf(p.out, "Updating Issue #%d...\n", doc.IssueNumber)

	issue, err := p.issues.UpdateIssue(ctx, repo, doc.IssueNumber, doc.Payload())
	if err != nil {
		return nil, &UpdateError{Number: doc.IssueNumber, Err: err}
	}

	commands.DisplaySuccessMessage(p.out, "updated", issue.URL)
	return &Result{
		Action: ActionUpdated,
		Repo:   repo,
		Number: doc.IssueNumber,
		URL:    issue.URL,
	}, nil
}

func (p *Publisher) create(ctx context.Context, repo cmd.RepoID, doc *Document, path string, perm fs.FileMode) (*Result, error) {
	fmt.Fprintln(p.out, "Creating New Issue...")

	issue, err := p.issues.CreateIssue(ctx, repo, doc.Payload())
	if err != nil {
		return nil, err
	}
	commands.DisplaySuccessMessage(p.out, "created", issue.URL)

	result := &Result{
		Action: ActionCreated,
		Repo:   repo,
		Number: issue.Number,
		URL:    issue.URL,
	}

	// Rewrite the content as read, not the trimmed body
	updated, ok := MarkPublished(doc.Content, issue.Number)
	if !ok {
		result.Warning = fmt.Sprintf("could not update local file with issue_number (front matter format issue); add \"%s: %d\" manually", KeyIssueNumber, issue.Number)
		commands.DisplayWarning(p.out, "%s", result.Warning)
		return result, nil
	}

	slog.Debug("Recording issue number", "path", path, "issue", issue.Number)
	if err := os.WriteFile(path, []byte(updated), perm); err != nil {
		return result, &PersistError{Path: path, Number: issue.Number, Err: err}
	}

	result.FileUpdated = true
	commands.DisplayFileUpdated(p.out, issue.Number)
	return result, nil
}

func (p *Publisher) plan(repo cmd.RepoID, doc *Document) *Result {
	action := "create a new issue"
	if doc.Published() {
		action = fmt.Sprintf("update issue #%d", doc.IssueNumber)
	}

	fmt.Fprintf(p.out, "Dry run: would %s in %s\n", action, repo)
	fmt.Fprintf(p.out, "  Title: %s\n", doc.Title)
	fmt.Fprintf(p.out, "  Labels: %s\n", strings.Join(doc.Labels, ", "))
	fmt.Fprintf(p.out, "  Body: %d bytes\n", len(doc.Body))

	return &Result{
		Action: ActionPlanned,
		Repo:   repo,
		Number: doc.IssueNumber,
	}
}
