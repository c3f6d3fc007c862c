// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citation-atlas CLI, which builds
// the citation dataset behind the portfolio's citation map.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citation-atlas/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultScholarID = "hIVoKbIAAAAJ"
	defaultOutput    = "src/data/citations.json"
	defaultUserAgent = "citation-atlas/0.1"
	defaultTimeout   = 30 * time.Second
	defaultInterval  = 1 * time.Second
)

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the citation-atlas CLI.
var rootCmd = &cobra.Command{
	Use:   "citation-atlas",
	Short: "Fetch and summarize who cites a Google Scholar author",
	Long: `citation-atlas collects a Google Scholar author's publications and the papers
citing them through SerpAPI, scores each citing paper's influence, geocodes
citing institutions with OpenStreetMap Nominatim, and writes one JSON dataset
for the site's citation map.

The SerpAPI key is read from SERPAPI_KEY (a .env file is honored) or from
.secrets/serpapi-api-key.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadEnvFile(".env"); err != nil {
			return err
		}
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citation-atlas.yaml or ~/.config/citation-atlas/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citation-atlas")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citation-atlas"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("CITATION_ATLAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("scholar_id", defaultScholarID)
	viper.SetDefault("output", defaultOutput)
	viper.SetDefault("user_agent", defaultUserAgent)
	viper.SetDefault("timeout", defaultTimeout)
	viper.SetDefault("scholar.interval", defaultInterval)
	viper.SetDefault("scholar.max_pages", 0)
	viper.SetDefault("geocoder.interval", defaultInterval)
	viper.SetDefault("geocoder.memoize", true)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
