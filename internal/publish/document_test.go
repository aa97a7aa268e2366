package publish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantTitle  string
		wantLabels []string
		wantNumber int
		wantBody   string
		wantErr    error
	}{
		{
			name:       "title only",
			content:    "---\ntitle: Hello\n---\nBody",
			wantTitle:  "Hello",
			wantLabels: []string{},
			wantBody:   "Body",
		},
		{
			name:       "list labels",
			content:    "---\ntitle: Hello\nlabels: [a, b, c]\n---\n",
			wantTitle:  "Hello",
			wantLabels: []string{"a", "b", "c"},
		},
		{
			name:       "string labels",
			content:    "---\ntitle: Hello\nlabels: a, b, c\n---\n",
			wantTitle:  "Hello",
			wantLabels: []string{"a", "b", "c"},
		},
		{
			name:       "published",
			content:    "---\ntitle: Hello\nissue_number: 42\n---\n",
			wantTitle:  "Hello",
			wantLabels: []string{},
			wantNumber: 42,
		},
		{
			name:       "empty issue number is unpublished",
			content:    "---\ntitle: Hello\nissue_number:\n---\n",
			wantTitle:  "Hello",
			wantLabels: []string{},
		},
		{
			name:    "missing title",
			content: "---\nlabels: [a]\n---\n",
			wantErr: ErrMissingTitle,
		},
		{
			name:    "empty title",
			content: "---\ntitle:\n---\n",
			wantErr: ErrMissingTitle,
		},
		{
			name:    "no front matter",
			content: "# Hello\n\nBody",
			wantErr: ErrMissingTitle,
		},
		{
			name:    "non numeric issue number",
			content: "---\ntitle: Hello\nissue_number: forty-two\n---\n",
			wantErr: ErrInvalidIssueNumber,
		},
		{
			name:    "zero issue number",
			content: "---\ntitle: Hello\nissue_number: 0\n---\n",
			wantErr: ErrInvalidIssueNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(tt.content)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, doc.Title)
			assert.Equal(t, tt.wantLabels, doc.Labels)
			assert.Equal(t, tt.wantNumber, doc.IssueNumber)
			assert.Equal(t, tt.wantNumber > 0, doc.Published())
			assert.Equal(t, tt.wantBody, doc.Body)
			assert.Equal(t, tt.content, doc.Content)
		})
	}
}

func TestMarkPublished(t *testing.T) {
	got, ok := MarkPublished("---\ntitle: Hello\n---\nBody", 42)
	require.True(t, ok)
	assert.Equal(t, "---\ntitle: Hello\nissue_number: 42\n---\nBody", got)

	_, ok = MarkPublished("Body only", 42)
	assert.False(t, ok)
}
