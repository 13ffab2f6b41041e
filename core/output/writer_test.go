package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_LocationFolders(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	path, err := w.Write("千葉県", "松戸市", date, []byte("# データ\n"), ".md")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "千葉県", "松戸市", "2025-01-15.md"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# データ\n", string(data))
}

func TestWrite_SentinelLocationStillWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	path, err := w.Write("その他", "その他", date, []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "その他", "その他", "2025-01-15.json"), path)
}

func TestWrite_OverwritesSameDay(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	_, err = w.Write("千葉県", "柏市", date, []byte("first"), ".md")
	require.NoError(t, err)
	path, err := w.Write("千葉県", "柏市", date, []byte("second"), ".md")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestNew_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := New(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
