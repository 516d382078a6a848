package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/i18n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	t.Run("loads a single file", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "en.yaml", "en:\n  hello: Hello\n")
		bundle, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), p).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", bundle["en"]["hello"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "en.json", "")
		_, err := i18n.NewFileAdapter(i18n.NewJSONParser(), p).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrEmptyFile)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFileAdapter(nil, "x.json"))
		assert.Nil(t, i18n.NewFileAdapter(i18n.NewJSONParser(), ""))
	})
}

func TestDirectoryAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges mixed formats", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.json", `{"en": {"validation": {"minimum": "min"}}}`)
		writeFile(t, dir, "b.toml", "[en.validation]\nmaximum = \"max\"\n[de.validation]\nminimum = \"mindestens\"\n")
		writeFile(t, dir, "notes.txt", "ignored")

		bundle, err := i18n.NewDirectoryAdapter(i18n.NewMultiParser(), dir).Load(context.Background())
		require.NoError(t, err)

		en, ok := bundle["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "min", en["minimum"])
		assert.Equal(t, "max", en["maximum"])
		assert.Contains(t, bundle, "de")
	})

	t.Run("bad files are skipped when others load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "good.json", `{"en": {"a": "b"}}`)
		writeFile(t, dir, "bad.json", `{"en":`)

		bundle, err := i18n.NewDirectoryAdapter(i18n.NewJSONParser(), dir).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "b", bundle["en"]["a"])
	})

	t.Run("no valid files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.json", `{"en":`)

		_, err := i18n.NewDirectoryAdapter(i18n.NewJSONParser(), dir).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("path is a file", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "en.json", `{"en": {"a": "b"}}`)
		_, err := i18n.NewDirectoryAdapter(i18n.NewJSONParser(), p).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNotADirectory)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewDirectoryAdapter(i18n.NewJSONParser(), filepath.Join(t.TempDir(), "x")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToAccessDirectory)
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"translations/en.yaml": {Data: []byte("en:\n  validation:\n    minimum: min\n")},
		"translations/de.json": {Data: []byte(`{"de": {"validation": {"minimum": "mindestens"}}}`)},
	}

	t.Run("loads every supported file", func(t *testing.T) {
		bundle, err := i18n.NewFSAdapter(i18n.NewMultiParser(), fsys, "translations").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, bundle, 2)
	})

	t.Run("parser filters extensions", func(t *testing.T) {
		bundle, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "translations").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, bundle, 1)
		assert.Contains(t, bundle, "de")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "translations").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingDirectoryCancelled)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "translations"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewJSONParser(), nil, "translations"))
	})
}
