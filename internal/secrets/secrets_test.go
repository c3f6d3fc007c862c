// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, FileAPIKey, "  abc123  \n")
				writeFile(t, dir, "nominatim-email", "user@example.com\n")
				return dir
			},
			want: map[string]string{
				FileAPIKey:        "abc123",
				"nominatim-email": "user@example.com",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, FileAPIKey, "valid-key")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".hidden-key", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				FileAPIKey: "valid-key",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAPIKey(t *testing.T) {
	env := func(vals map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vals[k]
			return v, ok
		}
	}

	tests := []struct {
		name       string
		env        map[string]string
		loaded     map[string]string
		wantKey    string
		wantSource Source
	}{
		{
			name:       "environment wins",
			env:        map[string]string{EnvAPIKey: " env-key "},
			loaded:     map[string]string{FileAPIKey: "file-key"},
			wantKey:    "env-key",
			wantSource: SourceEnv,
		},
		{
			name:       "blank environment falls through to file",
			env:        map[string]string{EnvAPIKey: "  "},
			loaded:     map[string]string{FileAPIKey: "file-key"},
			wantKey:    "file-key",
			wantSource: SourceFile,
		},
		{
			name:       "development fallback",
			env:        map[string]string{},
			loaded:     map[string]string{},
			wantKey:    DevAPIKey,
			wantSource: SourceFallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, src := ResolveAPIKey(env(tt.env), tt.loaded)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantSource, src)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	const name = "CITATION_ATLAS_TEST_DOTENV"
	t.Cleanup(func() { os.Unsetenv(name) })

	dir := t.TempDir()
	writeFile(t, dir, ".env", name+"=from-dotenv\n")

	require.NoError(t, LoadEnvFile(filepath.Join(dir, ".env")))
	assert.Equal(t, "from-dotenv", os.Getenv(name))
}

func TestLoadEnvFileKeepsExisting(t *testing.T) {
	const name = "CITATION_ATLAS_TEST_DOTENV_KEEP"
	t.Setenv(name, "already-set")

	dir := t.TempDir()
	writeFile(t, dir, ".env", name+"=from-dotenv\n")

	require.NoError(t, LoadEnvFile(filepath.Join(dir, ".env")))
	assert.Equal(t, "already-set", os.Getenv(name))
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
