package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarStore_Accepts(t *testing.T) {
	store, err := NewAvatarStore(t.TempDir())
	require.NoError(t, err)

	assert.True(t, store.Accepts("image/jpeg"))
	assert.True(t, store.Accepts("image/png"))
	assert.True(t, store.Accepts("image/webp"))
	assert.False(t, store.Accepts("image/gif"))
	assert.False(t, store.Accepts("application/pdf"))
}

func TestAvatarStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAvatarStore(dir)
	require.NoError(t, err)

	payload := []byte{0x89, 'P', 'N', 'G'}
	url, err := store.Save(7, "image/png", bytes.NewReader(payload))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/avatar_7_"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	written, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestAvatarStore_Save_RejectsUnknownType(t *testing.T) {
	store, err := NewAvatarStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(7, "image/gif", bytes.NewReader([]byte("GIF89a")))
	assert.Error(t, err)
}

func TestNewAvatarStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewAvatarStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
