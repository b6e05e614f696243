package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hareramrai/missing-validators/pkg/i18n"
)

func TestFileAdapter(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads yaml by extension", func(t *testing.T) {
		path := filepath.Join(dir, "en.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en:\n  hello: Hello\n"), 0o600))

		data, err := i18n.NewFileAdapter(nil, path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["hello"])
	})

	t.Run("loads json", func(t *testing.T) {
		path := filepath.Join(dir, "fr.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"fr":{"hello":"Bonjour"}}`), 0o600))

		data, err := i18n.NewFileAdapter(i18n.NewJSONParser(), path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bonjour", data["fr"]["hello"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(nil, filepath.Join(dir, "none.yaml")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(nil, filepath.Join(dir, "en.txt")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFileAdapter(nil, filepath.Join(dir, "en.yaml")).Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml":   {Data: []byte("en:\n  errors:\n    messages:\n      url: is not a valid URL\n")},
		"locales/de.yml":    {Data: []byte("de:\n  hello: Hallo\n")},
		"locales/notes.txt": {Data: []byte("ignored")},
	}

	t.Run("loads every supported file", func(t *testing.T) {
		data, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, data, "en")
		assert.Equal(t, "Hallo", data["de"]["hello"])
	})

	t.Run("nil parser mixes formats", func(t *testing.T) {
		mixed := fstest.MapFS{
			"en.yaml":   {Data: []byte("en:\n  hello: Hello\n")},
			"de.json":   {Data: []byte(`{"de":{"hello":"Hallo"}}`)},
			"notes.txt": {Data: []byte("ignored")},
		}
		data, err := i18n.NewFSAdapter(nil, mixed, ".").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["hello"])
		assert.Equal(t, "Hallo", data["de"]["hello"])
	})

	t.Run("no matching files", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("broken file", func(t *testing.T) {
		broken := fstest.MapFS{"en.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), broken, ".").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})
}

func TestMergeAdapters(t *testing.T) {
	base := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"errors": map[string]any{"messages": map[string]any{
			"url":   "is not a valid URL",
			"email": "is not a valid email address",
		}}},
	}}
	override := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"errors": map[string]any{"messages": map[string]any{
			"url": "looks wrong",
		}}},
	}}

	tr, err := i18n.NewTranslator(context.Background(), i18n.MergeAdapters(base, nil, override))
	require.NoError(t, err)
	assert.Equal(t, "looks wrong", tr.T("en", "errors.messages.url"))
	assert.Equal(t, "is not a valid email address", tr.T("en", "errors.messages.email"))

	// sources are not mutated
	msgs := base.Data["en"]["errors"].(map[string]any)["messages"].(map[string]any)
	assert.Equal(t, "is not a valid URL", msgs["url"])
}
