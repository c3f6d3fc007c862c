// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the SerpAPI key from the environment, a .env
// file, or a directory of plain-text key files.
//
// In a secrets directory each file represents one secret: the filename is
// the key name and the trimmed file contents are the value. The SerpAPI key
// file is named serpapi-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvAPIKey is the environment variable holding the SerpAPI key.
	EnvAPIKey = "SERPAPI_KEY"

	// FileAPIKey is the secrets-directory file holding the SerpAPI key.
	FileAPIKey = "serpapi-api-key"

	// DevAPIKey is the local-development fallback used when no key is
	// configured. Requests made with it fail upstream, which the pipeline
	// turns into an empty dataset.
	DevAPIKey = "local-development-key"
)

// Source records where a resolved key came from.
type Source string

const (
	SourceEnv      Source = "environment"
	SourceFile     Source = "secrets file"
	SourceFallback Source = "development fallback"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// LoadEnvFile loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ResolveAPIKey picks the SerpAPI key: the environment variable first, then
// the secrets file, then DevAPIKey. lookup is usually os.LookupEnv.
func ResolveAPIKey(lookup func(string) (string, bool), loaded map[string]string) (string, Source) {
	if v, ok := lookup(EnvAPIKey); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), SourceEnv
	}
	if v := loaded[FileAPIKey]; v != "" {
		return v, SourceFile
	}
	return DevAPIKey, SourceFallback
}
