package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.DocumentStore = (*DocumentStore)(nil)

// DocumentStore writes uploaded files into a directory. Each file is
// written to a temporary name first and renamed into place, so a scan
// never sees a partial document.
type DocumentStore struct {
	dir string
}

// NewDocumentStore creates a DocumentStore for dir.
func NewDocumentStore(dir string) *DocumentStore {
	return &DocumentStore{dir: dir}
}

// Save stores the contents of r as dir/name, replacing any existing file.
func (s *DocumentStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name = filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, `\`, "/")))
	if name == "/" || name == "." || strings.HasPrefix(name, ".") {
		return "", sitechat.Errorf(sitechat.EINVALID, "invalid file name")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating documents directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("storing %s: %w", name, err)
	}
	return name, nil
}
