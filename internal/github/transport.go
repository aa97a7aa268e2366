package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/go-github/v57/github"
)

// reposPath is the API prefix every repository endpoint lives under
const reposPath = "repos/"

// APIError is a non-2xx response from the GitHub API
type APIError struct {
	StatusCode int
	Reason     string // HTTP reason phrase, e.g. "Not Found"
	Message    string // "message" field of a JSON error body
	Body       string // raw response body
	JSON       bool   // whether Body was a JSON document
	Err        error
}

func (e *APIError) Error() string {
	if e.JSON {
		return fmt.Sprintf("GitHub API error: %d %s: %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("GitHub API error: %d %s: %s", e.StatusCode, e.Reason, strings.TrimSpace(e.Body))
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Do sends an authenticated request for path, relative to the repos/ API root.
// A non-nil payload is sent as a JSON body; a 2xx JSON response is decoded
// into out. Error responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, payload, out any) error {
	req, err := c.client.NewRequest(method, reposPath+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	slog.Debug("GitHub API: Sending request", "method", method, "url", req.URL.String())
	resp, err := c.client.Do(ctx, req, out)
	if err != nil {
		return newAPIError(err)
	}

	slog.Debug("GitHub API: Response received", "method", method, "status", resp.StatusCode)
	return nil
}

// newAPIError turns a go-github error into an *APIError when the server answered
func newAPIError(err error) error {
	var (
		resp    *http.Response
		message string
	)

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &errResp):
		resp, message = errResp.Response, errResp.Message
	case errors.As(err, &rateErr):
		resp, message = rateErr.Response, rateErr.Message
	case errors.As(err, &abuseErr):
		resp, message = abuseErr.Response, abuseErr.Message
	}

	if resp == nil {
		return fmt.Errorf("GitHub API request failed: %w", err)
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Message:    message,
		Err:        err,
	}

	// go-github leaves the error body readable after parsing it
	if resp.Body != nil {
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			apiErr.Body = string(data)
			apiErr.JSON = json.Valid(data)
		}
	}

	return apiErr
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
