package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	t.Run("returns data", func(t *testing.T) {
		data := map[string]map[string]any{"en": {"greeting": "hi"}}
		result, err := (&i18n.MapAdapter{Data: data}).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, data, result)
	})

	t.Run("nil data yields empty map", func(t *testing.T) {
		result, err := (&i18n.MapAdapter{}).Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges yaml and json files", func(t *testing.T) {
		fsys := fstest.MapFS{
			"msgs/a.yaml":    {Data: []byte("en:\n  one: \"1\"\n")},
			"msgs/b.json":    {Data: []byte(`{"en":{"two":"2"},"de":{"one":"eins"}}`)},
			"msgs/notes.txt": {Data: []byte("ignored")},
			"msgs/sub/c.yml": {Data: []byte("en:\n  three: \"3\"\n")},
		}
		result, err := i18n.NewFSAdapter(fsys, "msgs").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"one": "1", "two": "2"}, result["en"])
		assert.Equal(t, map[string]any{"one": "eins"}, result["de"])
	})

	t.Run("no catalog files", func(t *testing.T) {
		fsys := fstest.MapFS{"msgs/notes.txt": {Data: []byte("x")}}
		_, err := i18n.NewFSAdapter(fsys, "msgs").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("broken file", func(t *testing.T) {
		fsys := fstest.MapFS{"msgs/a.json": {Data: []byte(`{"en":`)}}
		_, err := i18n.NewFSAdapter(fsys, "msgs").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "msgs").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}
