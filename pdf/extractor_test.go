package pdf_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/sitechat/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF builds a single-page PDF that shows text with Helvetica.
func minimalPDF(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return []byte(b.String())
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts page text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "menu.pdf")
		require.NoError(t, os.WriteFile(path, minimalPDF("Fresh bread daily"), 0644))

		text, err := pdf.NewExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Contains(t, text, "Fresh bread daily")
	})

	t.Run("returns error for corrupt file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.pdf")
		require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

		_, err := pdf.NewExtractor().Extract(context.Background(), path)

		require.Error(t, err)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "none.pdf"))

		require.Error(t, err)
	})
}
