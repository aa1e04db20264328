package pipeline

import (
	"fmt"

	"github.com/theirongolddev/launchdash/internal/source"
)

// LoadResult holds the output of the data loading pipeline.
type LoadResult struct {
	Table *Table
	Path  string
	Lines int
}

// ProgressFunc is called during loading to report which stage is running.
type ProgressFunc func(stage string)

// Load parses the dataset at path and builds the launch table.
func Load(path string, progressFn ProgressFunc) (*LoadResult, error) {
	if progressFn != nil {
		progressFn("parsing")
	}
	pr, err := source.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return buildResult(path, pr.Lines, pr)
}

func buildResult(path string, lines int, pr source.ParseResult) (*LoadResult, error) {
	t, err := NewTable(pr.Records)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return &LoadResult{Table: t, Path: path, Lines: lines}, nil
}
