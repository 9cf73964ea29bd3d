package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/sitechat/mock"
	scslog "github.com/fwojciec/sitechat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTextExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.TextExtractor{
		ExtractFn: func(ctx context.Context, path string) (string, error) {
			return "héllo", nil
		},
	}

	text, err := scslog.NewLoggingTextExtractor(inner, logger).Extract(context.Background(), "/docs/menu.pdf")

	require.NoError(t, err)
	assert.Equal(t, "héllo", text)
	assert.Contains(t, buf.String(), "document=menu.pdf")
	assert.Contains(t, buf.String(), "chars=5")
}
