package sitechat

import (
	"context"
	"io"
	"sort"
	"strings"
)

// DocumentPool maps a document name (its file name) to its extracted text.
// A pool is always rebuilt wholesale; it never carries entries over from a
// previous build.
type DocumentPool map[string]string

// Names returns the document names in ascending order.
func (p DocumentPool) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text joins the non-empty document texts in name order, separated by newlines.
func (p DocumentPool) Text() string {
	parts := make([]string, 0, len(p))
	for _, name := range p.Names() {
		if p[name] == "" {
			continue
		}
		parts = append(parts, p[name])
	}
	return strings.Join(parts, "\n")
}

// TextExtractor extracts plain text from a single stored document.
type TextExtractor interface {
	// Extract reads the file at path and returns its text.
	Extract(ctx context.Context, path string) (string, error)
}

// DocumentStore saves uploaded documents into the documents directory.
type DocumentStore interface {
	// Save writes the contents of r under name and returns the stored
	// file name. Names that would escape the directory are rejected with
	// EINVALID.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
