package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/sitechat/cmd/sitechat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMain() *main.Main {
	m := main.NewMain()
	m.EnvFile = ""
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command prints help and fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newMain().Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage: sitechat")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "serve")
		assert.Contains(t, stdout.String(), "ask")
	})

	t.Run("rejects unknown fetcher", func(t *testing.T) {
		t.Parallel()

		err := newMain().Run(context.Background(),
			[]string{"--fetcher=curl", "crawl", "https://example.com"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("extracts documents end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hours.txt"), []byte("Open 9 to 5\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# Notes\n"), 0o644))
		stdout := &bytes.Buffer{}

		err := newMain().Run(context.Background(),
			[]string{"--log-level=error", "extract", dir}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "hours.txt: 11 characters")
		assert.Contains(t, stdout.String(), "notes.md: 7 characters")
		assert.Contains(t, stdout.String(), "Extracted 2 documents")
	})

	t.Run("loads env file", func(t *testing.T) {
		t.Parallel()

		docs := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(docs, "a.txt"), []byte("alpha"), 0o644))
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("SITECHAT_DOCS_DIR="+docs+"\n"), 0o644))

		m := main.NewMain()
		m.EnvFile = envFile
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--log-level=error", "extract"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "a.txt: 5 characters")
	})
}
