// Package pdf extracts text from PDF documents.
package pdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/ledongthuc/pdf"
)

var _ sitechat.TextExtractor = (*Extractor)(nil)

// Extractor reads the plain text of every page of a PDF.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text of the PDF at path. Malformed files, including
// those that make the parser panic, are reported as errors.
func (e *Extractor) Extract(ctx context.Context, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
