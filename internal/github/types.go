package github

// Issue represents an issue returned by GitHub
type Issue struct {
	Number int
	Title  string
	URL    string
	State  string
}

// IssuePayload is the title, body and labels sent when creating or updating an issue
type IssuePayload struct {
	Title  string
	Body   string
	Labels []string
}
