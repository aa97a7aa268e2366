package publish

import (
	"fmt"
	"strconv"

	"github.com/alan/gmeek-pub/internal/frontmatter"
	"github.com/alan/gmeek-pub/internal/github"
)

// Front matter keys read by the publisher
const (
	KeyTitle       = "title"
	KeyLabels      = "labels"
	KeyIssueNumber = "issue_number"
)

// Document is a local file ready to be published
type Document struct {
	Content     string // file content as read from disk
	Title       string
	Labels      []string
	Body        string
	IssueNumber int // zero until the document has been published
}

// Published reports whether the document already has an issue
func (d *Document) Published() bool {
	return d.IssueNumber > 0
}

// Payload returns the issue fields for the document
func (d *Document) Payload() github.IssuePayload {
	return github.IssuePayload{
		Title:  d.Title,
		Body:   d.Body,
		Labels: d.Labels,
	}
}

// ParseDocument decodes content and validates the keys the publisher needs
func ParseDocument(content string) (*Document, error) {
	meta, body := frontmatter.Decode(content)

	doc := &Document{
		Content: content,
		Body:    body,
		Labels:  []string{},
	}

	if title, ok := meta.Get(KeyTitle); ok {
		doc.Title = title.String()
	}
	if doc.Title == "" {
		return nil, ErrMissingTitle
	}

	if labels, ok := meta.Get(KeyLabels); ok {
		doc.Labels = labels.Items()
	}

	// An empty issue_number line still means "not published yet"
	if value, ok := meta.Get(KeyIssueNumber); ok && value.String() != "" {
		number, err := strconv.Atoi(value.String())
		if err != nil || number <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIssueNumber, value.String())
		}
		doc.IssueNumber = number
	}

	return doc, nil
}

// MarkPublished returns content with issue_number recorded in its front
// matter. It reports false when the document has no front matter block.
func MarkPublished(content string, number int) (string, bool) {
	return frontmatter.InsertKey(content, KeyIssueNumber, strconv.Itoa(number))
}
