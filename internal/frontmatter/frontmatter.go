// Package frontmatter reads and amends the metadata block at the top of a Markdown document.
//
// A block is recognized only when the document starts with a line that is
// exactly "---" and a second such line closes it:
//
//	---
//	title: Hello
//	labels: [blog, go]
//	---
//	Body text...
//
// Lines inside the block are "key: value" pairs. Blank lines, lines starting
// with '#' and lines without a colon are skipped. Parsing never fails: a
// document without a complete block is all body.
package frontmatter

import (
	"strings"
)

// Delimiter opens and closes the metadata block
const Delimiter = "---"

// Value is a metadata value, either a scalar string or a list written as [a, b, c]
type Value struct {
	scalar string
	items  []string
	isList bool
}

// Scalar returns a scalar value
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List returns a list value
func List(items ...string) Value {
	return Value{items: append([]string{}, items...), isList: true}
}

// IsList reports whether the value was written with list syntax
func (v Value) IsList() bool {
	return v.isList
}

// String returns the scalar text, or the list items joined by ", "
func (v Value) String() string {
	if v.isList {
		return strings.Join(v.items, ", ")
	}
	return v.scalar
}

// Items returns the value as a list. A scalar is split on commas; each
// element is trimmed and empty elements are dropped.
func (v Value) Items() []string {
	if v.isList {
		return append([]string{}, v.items...)
	}
	return splitItems(v.scalar)
}

// Metadata is an ordered key/value mapping with unique keys
type Metadata struct {
	keys   []string
	values map[string]Value
}

// NewMetadata returns an empty mapping
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]Value)}
}

// Set stores a value. A key seen before keeps its original position.
func (m *Metadata) Set(key string, value Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key
func (m *Metadata) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present
func (m *Metadata) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in document order
func (m *Metadata) Keys() []string {
	return append([]string{}, m.keys...)
}

// Len returns the number of keys
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Decode splits text into its metadata and trimmed body.
// Without a complete block the metadata is empty and the body is text unchanged.
func Decode(text string) (*Metadata, string) {
	meta := NewMetadata()

	lines := strings.Split(text, "\n")
	closing, ok := findBlock(lines)
	if !ok {
		return meta, text
	}

	for _, line := range lines[1:closing] {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		meta.Set(key, value)
	}

	body := strings.Join(lines[closing+1:], "\n")
	return meta, strings.TrimSpace(body)
}

// InsertKey adds a "key: value" line right before the closing delimiter.
// All other lines are kept verbatim. It reports false, returning text
// unchanged, when the document has no complete block.
func InsertKey(text, key, value string) (string, bool) {
	lines := strings.Split(text, "\n")
	closing, ok := findBlock(lines)
	if !ok {
		return text, false
	}

	line := key + ": " + value
	if strings.HasSuffix(lines[closing], "\r") {
		line += "\r"
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:closing]...)
	out = append(out, line)
	out = append(out, lines[closing:]...)
	return strings.Join(out, "\n"), true
}

// findBlock returns the index of the closing delimiter line when lines
// open with a delimiter and a later line closes the block
func findBlock(lines []string) (int, bool) {
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return 0, false
	}
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			return i, true
		}
	}
	return 0, false
}

// isDelimiter matches a line that is exactly the delimiter; a CR left by
// CRLF line endings is ignored
func isDelimiter(line string) bool {
	return strings.TrimSuffix(line, "\r") == Delimiter
}

func parseLine(line string) (string, Value, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", Value{}, false
	}

	key, raw, ok := strings.Cut(line, ":")
	if !ok {
		return "", Value{}, false
	}
	key = strings.TrimSpace(key)
	raw = strings.TrimSpace(raw)

	if len(raw) >= 2 && strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		var items []string
		for _, item := range strings.Split(raw[1:len(raw)-1], ",") {
			item = unquote(strings.TrimSpace(item))
			if item == "" {
				continue
			}
			items = append(items, item)
		}
		return key, List(items...), true
	}

	return key, Scalar(raw), true
}

// unquote strips one layer of matching single or double quotes
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func splitItems(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
