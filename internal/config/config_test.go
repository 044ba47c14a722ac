package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadPath(filepath.Join(t.TempDir(), "missing.yaml"), ScopeGlobal)
	require.NoError(t, err)

	assert.True(t, cfg.AdvancedSearch())
	assert.Equal(t, "", cfg.VaultPath())
	assert.Equal(t, DefaultIgnore(), cfg.Ignore())
	assert.Equal(t, int64(DefaultMaxContent), cfg.MaxContent())
	for _, k := range ValidKeys() {
		assert.False(t, cfg.IsSet(k), "key %s", k)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	p := writeConfig(t, "search:\n  advanced: false\n")

	cfg, err := loadPath(p, ScopeLocal)
	require.NoError(t, err)

	assert.False(t, cfg.AdvancedSearch())
	assert.True(t, cfg.IsSet("search.advanced"))
	// Untouched fields keep their defaults
	assert.Equal(t, DefaultIgnore(), cfg.Ignore())
	assert.Equal(t, int64(DefaultMaxContent), cfg.MaxContent())
	assert.Equal(t, ScopeLocal, cfg.Scope())
}

func TestLoad_ExplicitEmptyIgnore(t *testing.T) {
	p := writeConfig(t, "vault:\n  ignore: []\n")

	cfg, err := loadPath(p, ScopeGlobal)
	require.NoError(t, err)
	assert.Empty(t, cfg.Ignore())
	assert.True(t, cfg.IsSet("vault.ignore"))
}

func TestLoad_Malformed(t *testing.T) {
	p := writeConfig(t, "search: [unclosed\n")
	_, err := loadPath(p, ScopeGlobal)
	assert.ErrorContains(t, err, "malformed config file")
}

func TestLoad_Invalid(t *testing.T) {
	p := writeConfig(t, "limits:\n  max_content: 0\n")
	_, err := loadPath(p, ScopeGlobal)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{path: p}
	require.NoError(t, cfg.Set("search.advanced", "FALSE"))
	require.NoError(t, cfg.Set("vault.ignore", "templates/**, .trash/**"))
	require.NoError(t, cfg.Save())

	loaded, err := loadPath(p, ScopeGlobal)
	require.NoError(t, err)
	assert.False(t, loaded.AdvancedSearch())
	assert.Equal(t, []string{"templates/**", ".trash/**"}, loaded.Ignore())
	assert.False(t, loaded.IsSet("limits.max_content"))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "max_content")
}

func TestGetSet(t *testing.T) {
	cfg := &Config{}

	tests := []struct {
		key     string
		value   string
		want    string
		wantErr error
	}{
		{"search.advanced", "true", "true", nil},
		{"search.advanced", "False", "false", nil},
		{"search.advanced", "yes", "", ErrInvalidValue},
		{"vault.path", "/notes", "/notes", nil},
		{"vault.ignore", "a/**,b/**", "a/**,b/**", nil},
		{"vault.ignore", "", "", nil},
		{"limits.max_content", "2048", "2048", nil},
		{"limits.max_content", "0", "", ErrInvalidValue},
		{"limits.max_content", "big", "", ErrInvalidValue},
		{"nope", "x", "", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAll(t *testing.T) {
	cfg := &Config{}
	all := cfg.All()
	assert.Len(t, all, len(ValidKeys()))
	for _, k := range ValidKeys() {
		assert.Contains(t, all, k)
		assert.True(t, IsValidKey(k))
	}
	assert.Equal(t, "true", all["search.advanced"])
	assert.False(t, IsValidKey("author.name"))
}

func TestSet_InvalidIgnorePattern(t *testing.T) {
	cfg := &Config{}
	err := cfg.Set("vault.ignore", "ok/**,[")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.False(t, cfg.IsSet("vault.ignore"), "a rejected value must not be stored")
}

func TestLoadDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))

	vaultDir := t.TempDir()
	local := filepath.Join(vaultDir, LocalPath())
	require.NoError(t, os.MkdirAll(filepath.Dir(local), 0755))
	require.NoError(t, os.WriteFile(local, []byte("vault:\n  ignore: [\"drafts/**\"]\n"), 0644))

	t.Run("reads the vault's local config", func(t *testing.T) {
		cfg, err := LoadDir(vaultDir)
		require.NoError(t, err)
		assert.Equal(t, ScopeLocal, cfg.Scope())
		assert.Equal(t, []string{"drafts/**"}, cfg.Ignore())

		require.NoError(t, cfg.Set("search.advanced", "false"))
		require.NoError(t, cfg.Save())
		data, err := os.ReadFile(local)
		require.NoError(t, err)
		assert.Contains(t, string(data), "advanced: false", "saves go back to the vault's file")
	})

	t.Run("falls back to global", func(t *testing.T) {
		cfg, err := LoadDir(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, ScopeGlobal, cfg.Scope())
		assert.Equal(t, DefaultIgnore(), cfg.Ignore())
	})
}
