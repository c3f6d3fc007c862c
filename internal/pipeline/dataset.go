// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/citation-atlas/pkg/types"
)

// EmptyDataset returns a dataset with no publications. Lists are empty
// rather than nil so they encode as [].
func EmptyDataset(scholarID string, updated time.Time) *types.CitationData {
	return &types.CitationData{
		LastUpdated:  updated.UTC(),
		ScholarID:    scholarID,
		Publications: []types.Publication{},
		CitingPapers: []types.CitingPaper{},
		Locations:    []types.CitationLocation{},
		Stats:        ComputeStats(nil, nil),
	}
}

// WriteDataset encodes data as two-space indented JSON and replaces the
// file at path. The file is written to a temp file in the same directory
// and renamed, so readers never see a partial dataset.
func WriteDataset(data *types.CitationData, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".citations-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	enc := json.NewEncoder(tmpFile)
	enc.SetIndent("", "  ")
	encErr := enc.Encode(data)
	closeErr := tmpFile.Close()
	if encErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encoding dataset: %w", encErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// LoadDataset reads a dataset written by WriteDataset. Contents are not
// validated.
func LoadDataset(path string) (*types.CitationData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var data types.CitationData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return &data, nil
}
