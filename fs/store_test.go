package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes file into directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "docs")
		store := fs.NewDocumentStore(dir)

		name, err := store.Save(context.Background(), "menu.txt", strings.NewReader("soup"))

		require.NoError(t, err)
		assert.Equal(t, "menu.txt", name)
		data, err := os.ReadFile(filepath.Join(dir, "menu.txt"))
		require.NoError(t, err)
		assert.Equal(t, "soup", string(data))
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewDocumentStore(dir)
		_, err := store.Save(context.Background(), "a.txt", strings.NewReader("old"))
		require.NoError(t, err)

		_, err = store.Save(context.Background(), "a.txt", strings.NewReader("new"))

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("keeps uploads inside the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewDocumentStore(dir)

		name, err := store.Save(context.Background(), "../../etc/evil.txt", strings.NewReader("x"))

		require.NoError(t, err)
		assert.Equal(t, "evil.txt", name)
		assert.FileExists(t, filepath.Join(dir, "evil.txt"))
	})

	t.Run("rejects empty and hidden names", func(t *testing.T) {
		t.Parallel()

		store := fs.NewDocumentStore(t.TempDir())

		for _, name := range []string{"", "..", ".env"} {
			_, err := store.Save(context.Background(), name, strings.NewReader("x"))
			assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err), name)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := fs.NewDocumentStore(dir).Save(context.Background(), "a.txt", strings.NewReader("x"))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
