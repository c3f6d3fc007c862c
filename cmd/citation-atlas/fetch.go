// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citation-atlas/internal/geocode"
	"github.com/pdiddy/citation-atlas/internal/httputil"
	"github.com/pdiddy/citation-atlas/internal/pipeline"
	"github.com/pdiddy/citation-atlas/internal/scholar"
	"github.com/pdiddy/citation-atlas/internal/score"
	"github.com/pdiddy/citation-atlas/internal/secrets"
	"github.com/pdiddy/citation-atlas/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch citations and write the dataset",
	Long: `Fetch retrieves the author's publications, pages through the citing papers
of each one, geocodes the citing institutions and replaces the dataset file.

Requests to SerpAPI and to Nominatim are each paced to one per interval.
When the profile cannot be fetched an empty dataset is written.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("scholar-id", "", "Google Scholar author id (default "+defaultScholarID+")")
	fetchCmd.Flags().String("output", "", "dataset path (default "+defaultOutput+")")
	fetchCmd.Flags().String("venue-patterns", "", "YAML file overriding the built-in venue tiers")
	fetchCmd.Flags().Int("max-pages", 0, "citation pages fetched per publication (default 1000)")
	fetchCmd.Flags().Duration("serpapi-interval", 0, "minimum gap between SerpAPI requests (default 1s)")
	fetchCmd.Flags().Duration("geocode-interval", 0, "minimum gap between Nominatim requests (default 1s)")
	fetchCmd.Flags().Bool("no-memo", false, "geocode every affiliation, even repeated ones")

	bindFlag("scholar_id", "scholar-id")
	bindFlag("output", "output")
	bindFlag("venue_patterns", "venue-patterns")
	bindFlag("scholar.max_pages", "max-pages")
	bindFlag("scholar.interval", "serpapi-interval")
	bindFlag("geocoder.interval", "geocode-interval")

	rootCmd.AddCommand(fetchCmd)
}

// bindFlag binds a fetch flag to a viper key. Unset flags fall through to
// the config file, the environment and then the defaults.
func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, fetchCmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// pipelineConfig assembles the run configuration from viper.
func pipelineConfig() types.PipelineConfig {
	base := types.HTTPConfig{
		Timeout:   viper.GetDuration("timeout"),
		UserAgent: viper.GetString("user_agent"),
	}
	scholarHTTP := base
	scholarHTTP.Interval = viper.GetDuration("scholar.interval")
	geocoderHTTP := base
	geocoderHTTP.Interval = viper.GetDuration("geocoder.interval")

	return types.PipelineConfig{
		Scholar: types.ScholarConfig{
			HTTPConfig: scholarHTTP,
			AuthorID:   viper.GetString("scholar_id"),
			MaxPages:   viper.GetInt("scholar.max_pages"),
			SelfNames:  viper.GetStringSlice("self_names"),
		},
		Geocoder: types.GeocoderConfig{
			HTTPConfig: geocoderHTTP,
			Memoize:    viper.GetBool("geocoder.memoize"),
		},
		OutputPath:        viper.GetString("output"),
		VenuePatternsFile: viper.GetString("venue_patterns"),
	}
}

// classifier returns the venue classifier for a run, reading the pattern
// file when one is configured.
func classifier(path string) (*score.Classifier, error) {
	if path == "" {
		return score.NewClassifier(score.DefaultPatterns()), nil
	}
	p, err := score.LoadPatterns(path)
	if err != nil {
		return nil, err
	}
	return score.NewClassifier(p), nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cfg := pipelineConfig()
	if noMemo, _ := cmd.Flags().GetBool("no-memo"); noMemo {
		cfg.Geocoder.Memoize = false
	}

	key, source := secrets.ResolveAPIKey(os.LookupEnv, loadedSecrets)
	if source == secrets.SourceFallback {
		fmt.Fprintf(os.Stderr, "warning: %s is not set; using the development fallback key\n", secrets.EnvAPIKey)
	} else {
		fmt.Fprintf(os.Stderr, "Using SerpAPI key from %s\n", source)
	}
	cfg.Scholar.APIKey = key

	cl, err := classifier(cfg.VenuePatternsFile)
	if err != nil {
		return err
	}

	scholarHTTP := httputil.NewPacedClient(&http.Client{Timeout: cfg.Scholar.Timeout}, cfg.Scholar.Interval)
	sc := scholar.NewClient(scholarHTTP, cfg.Scholar, scholar.WithClassifier(cl))

	var geoOpts []geocode.Option
	if cfg.Geocoder.Memoize {
		geoOpts = append(geoOpts, geocode.WithCache(geocode.NewCache()))
	}
	geoHTTP := httputil.NewPacedClient(&http.Client{Timeout: cfg.Geocoder.Timeout}, cfg.Geocoder.Interval)
	g := geocode.New(geoHTTP, cfg.Geocoder.UserAgent, geoOpts...)

	p := pipeline.New(sc, g, cfg, os.Stdout)
	if _, err := p.Run(ctx); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	st := g.Stats()
	fmt.Fprintf(os.Stdout, "  geocoding:     %d remote, %d fallback, %d not found, %d cache hits\n",
		st.Remote, st.Fallback, st.NotFound, st.CacheHits)
	return nil
}
