package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyKnowledgePath, "/data/knowledge.txt")
	require.NoError(t, err)

	val, ok := store.Get(KeyKnowledgePath)
	assert.True(t, ok)
	assert.Equal(t, "/data/knowledge.txt", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyFallbackPolicy, "legacy")
	require.NoError(t, err)

	assert.Equal(t, "legacy", store.GetString(KeyFallbackPolicy))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	err = store.Set(KeyThreshold, 60)
	require.NoError(t, err)
	assert.Equal(t, "", store.GetString(KeyThreshold))
}

func TestConfigStore_GetInt(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyThreshold, 60)
	require.NoError(t, err)

	assert.Equal(t, 60, store.GetInt(KeyThreshold))

	// Non-existent key
	assert.Equal(t, 0, store.GetInt("nonexistent"))

	// Wrong type
	err = store.Set(KeyFallbackPolicy, "threshold")
	require.NoError(t, err)
	assert.Equal(t, 0, store.GetInt(KeyFallbackPolicy))
}

func TestConfigStore_GetBool(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyLooseCommandRule, true)
	require.NoError(t, err)
	assert.True(t, store.GetBool(KeyLooseCommandRule))

	err = store.Set(KeyLooseCommandRule, false)
	require.NoError(t, err)
	assert.False(t, store.GetBool(KeyLooseCommandRule))

	// Non-existent key
	assert.False(t, store.GetBool("nonexistent"))

	// Wrong type
	err = store.Set("string_key", "true")
	require.NoError(t, err)
	assert.False(t, store.GetBool("string_key"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyThreshold, 75))
	require.NoError(t, store.Set(KeyLooseCommandRule, false))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 75, reopened.GetInt(KeyThreshold))
	assert.False(t, reopened.GetBool(KeyLooseCommandRule))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[resolver]\nthreshold = 65\nfallback_policy = \"threshold\"\n\n[discord]\ntoken_file = \"/run/secrets/token\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 65, store.GetInt(KeyThreshold))
	assert.Equal(t, "threshold", store.GetString(KeyFallbackPolicy))
	assert.Equal(t, "/run/secrets/token", store.GetString(KeyDiscordTokenFile))
}

func TestConfigStore_LoadMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_SaveWritesFile(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyKnowledgePath, "kb.txt"))
	require.NoError(t, store.Save())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "kb.txt")
}
