package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := NewFileStore(path)

	t.Run("Missing file", func(t *testing.T) {
		_, err := s.Load(ctx, Key)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, s.Delete(ctx, Key))
	})

	t.Run("Save and load", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, Key, []byte(`{"_id":"u1","token":"t"}`)))
		require.NoError(t, s.Save(ctx, "theme", []byte(`"dark"`)))

		got, err := s.Load(ctx, Key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"_id":"u1","token":"t"}`, string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("Delete keeps other keys", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, Key))
		_, err := s.Load(ctx, Key)
		assert.ErrorIs(t, err, ErrNotFound)

		theme, err := s.Load(ctx, "theme")
		require.NoError(t, err)
		assert.Equal(t, `"dark"`, string(theme))
	})

	t.Run("Rejects non JSON", func(t *testing.T) {
		err := s.Save(ctx, Key, []byte("not json"))
		assert.ErrorIs(t, err, ErrFailedSaveState)
	})

	t.Run("Corrupt document", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

		_, err := s.Load(ctx, Key)
		assert.ErrorIs(t, err, ErrFailedLoadState)

		require.NoError(t, s.Save(ctx, Key, []byte(`{"token":"fresh"}`)))
		got, err := s.Load(ctx, Key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"token":"fresh"}`, string(got))
	})
}
