// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citation-atlas/internal/score"
)

func TestPipelineConfig_Defaults(t *testing.T) {
	setDefaults()

	cfg := pipelineConfig()
	assert.Equal(t, defaultScholarID, cfg.Scholar.AuthorID)
	assert.Equal(t, defaultOutput, cfg.OutputPath)
	assert.Equal(t, defaultInterval, cfg.Scholar.Interval)
	assert.Equal(t, defaultInterval, cfg.Geocoder.Interval)
	assert.Equal(t, defaultTimeout, cfg.Scholar.Timeout)
	assert.Equal(t, defaultUserAgent, cfg.Geocoder.UserAgent)
	assert.True(t, cfg.Geocoder.Memoize)
	assert.Empty(t, cfg.Scholar.APIKey, "the key is resolved separately")
}

func TestPipelineConfig_Overrides(t *testing.T) {
	setDefaults()
	viper.Set("scholar_id", "someoneElse")
	viper.Set("scholar.interval", 2*time.Second)
	viper.Set("self_names", []string{"a smith"})
	t.Cleanup(func() {
		viper.Set("scholar_id", defaultScholarID)
		viper.Set("scholar.interval", defaultInterval)
		viper.Set("self_names", []string{})
	})

	cfg := pipelineConfig()
	assert.Equal(t, "someoneElse", cfg.Scholar.AuthorID)
	assert.Equal(t, 2*time.Second, cfg.Scholar.Interval)
	assert.Equal(t, defaultInterval, cfg.Geocoder.Interval, "intervals are per service")
	assert.Equal(t, []string{"a smith"}, cfg.Scholar.SelfNames)
}

func TestClassifier(t *testing.T) {
	cl, err := classifier("")
	require.NoError(t, err)
	tier, _ := cl.Classify("IEEE Access")
	assert.Equal(t, score.Tier1, tier)

	path := filepath.Join(t.TempDir(), "venues.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precedence: [tier2]\ntier2: [access]\n"), 0o644))
	cl, err = classifier(path)
	require.NoError(t, err)
	tier, _ = cl.Classify("IEEE Access")
	assert.Equal(t, score.Tier2, tier)

	_, err = classifier(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
