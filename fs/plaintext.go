package fs

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.TextExtractor = (*PlainTextExtractor)(nil)

// PlainTextExtractor reads UTF-8 text and Markdown files as they are.
type PlainTextExtractor struct{}

// Extract returns the trimmed contents of the file at path. Files that are
// not valid UTF-8 are rejected.
func (PlainTextExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", sitechat.Errorf(sitechat.EINVALID, "%s is not UTF-8 text", path)
	}
	return strings.TrimSpace(string(data)), nil
}
