// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citation-atlas/internal/pipeline"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize an existing dataset",
	Long: `Report reads a dataset written by fetch and prints counts, influence bands,
the top venues and locations, and the citing papers that cite more than one
of the author's publications. It makes no network requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("input")
		if path == "" {
			path = viper.GetString("output")
		}
		data, err := pipeline.LoadDataset(path)
		if err != nil {
			return err
		}
		pipeline.FormatReport(data, os.Stdout)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("input", "", "dataset path (default: the configured output)")

	rootCmd.AddCommand(reportCmd)
}
