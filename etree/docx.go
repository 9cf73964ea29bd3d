// Package etree extracts text from Office Open XML (.docx) documents.
package etree

import (
	"archive/zip"
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitechat"
)

const documentPart = "word/document.xml"

var _ sitechat.TextExtractor = (*DocxExtractor)(nil)

// DocxExtractor reads the body text of a .docx file, one line per paragraph.
type DocxExtractor struct{}

// NewDocxExtractor creates a new DocxExtractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract returns the paragraphs of the document at path.
func (e *DocxExtractor) Extract(ctx context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", sitechat.Errorf(sitechat.EINVALID, "%s has no %s", path, documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return paragraphs(doc), nil
}

func paragraphs(doc *etree.Document) string {
	var lines []string
	for _, p := range doc.FindElements("//w:p") {
		var sb strings.Builder
		for _, el := range p.FindElements(".//*") {
			switch el.Space + ":" + el.Tag {
			case "w:t":
				sb.WriteString(el.Text())
			case "w:tab":
				sb.WriteString("\t")
			case "w:br":
				sb.WriteString("\n")
			}
		}
		if line := strings.TrimSpace(sb.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
