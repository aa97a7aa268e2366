package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// UserAgent identifies gmeek-pub to the GitHub API
const UserAgent = "Gmeek-Publisher-CLI"

// Client wraps the GitHub API client
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub client with token authentication.
// An empty apiURL keeps the public api.github.com endpoint.
func NewClient(ctx context.Context, token, apiURL string) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	client := github.NewClient(tc)
	client.UserAgent = UserAgent

	if apiURL != "" {
		baseURL, err := parseBaseURL(apiURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = baseURL
	}

	return &Client{client: client}, nil
}

// parseBaseURL validates apiURL and gives it the trailing slash go-github requires
func parseBaseURL(apiURL string) (*url.URL, error) {
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	baseURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", apiURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", apiURL)
	}
	return baseURL, nil
}
