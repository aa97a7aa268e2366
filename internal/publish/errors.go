package publish

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the document does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrNoRepository is returned when the repository could not be detected and none was entered
	ErrNoRepository = errors.New("no repository detected or entered")
	// ErrMissingTitle is returned when the front matter has no title
	ErrMissingTitle = errors.New("'title' missing in front matter")
	// ErrInvalidIssueNumber is returned when issue_number is not a positive integer
	ErrInvalidIssueNumber = errors.New("invalid issue_number in front matter")
)

// MissingTokenError is returned when the API token environment variable is empty
type MissingTokenError struct {
	Env string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("%s environment variable not set", e.Env)
}

// UpdateError is returned when updating an existing issue fails for any reason
type UpdateError struct {
	Number int
	Err    error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("failed to update issue #%d: %v", e.Number, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

// PersistError is returned when an issue was created but the document could
// not be rewritten with its number
type PersistError struct {
	Path   string
	Number int
	Err    error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("issue #%d was created but %s could not be updated: %v", e.Number, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
