package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sha1n/sitesearch/internal/config"
	"github.com/sha1n/sitesearch/internal/content"
	"github.com/sha1n/sitesearch/internal/domain"
	"github.com/sha1n/sitesearch/internal/output"
	"github.com/sha1n/sitesearch/internal/searchindex"
	"github.com/spf13/pflag"
)

// RunParams contains dependencies for the run function
type RunParams struct {
	LoadSettings  func(*pflag.FlagSet) (*config.Settings, error)
	ValidSettings func(*config.Settings) error
	LoadContent   func(context.Context, *config.Settings) (*content.Collection, error)
	ReadPrevious  func(path string) ([]domain.SearchRecord, error)
	WriteRecords  func(path string, records []domain.SearchRecord) error
	Now           func() time.Time
	LogOutput     io.Writer // Optional: defaults to stderr
}

// DefaultRunParams returns production dependencies
func DefaultRunParams() RunParams {
	return RunParams{
		LoadSettings:  config.LoadSettingsWithFlags,
		ValidSettings: config.ValidateSettings,
		LoadContent:   LoadContent,
		ReadPrevious:  output.ReadRecords,
		WriteRecords:  output.WriteRecords,
		Now:           time.Now,
	}
}

// RunWithDeps builds the search records with the provided dependencies
func RunWithDeps(ctx context.Context, params RunParams, flags *pflag.FlagSet, version string) error {
	// Load settings
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Validate settings
	if err := params.ValidSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Configure logging - always use stderr so stdout can carry the records
	logOutput := params.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	slog.SetDefault(config.NewLogger(logOutput, settings))

	slog.InfoContext(ctx, "Building search records", "version", version)
	config.Log(settings)

	site, err := params.LoadContent(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	slog.InfoContext(ctx, "Loaded content", "items", site.Len())

	isLive := content.LivePredicate(params.Now(), settings.IncludeDrafts)

	cols, err := BuildCollections(site, settings.Collections, settings.BaseURL, isLive)
	if err != nil {
		return fmt.Errorf("failed to build collections: %w", err)
	}
	slog.InfoContext(ctx, "Built collections",
		"authors", len(cols.AuthorsFeed),
		"newsletters", len(cols.Newsletters),
		"tags", len(cols.Tags))

	builder := searchindex.NewBuilder(searchindex.Options{
		Lang:      settings.Lang,
		MaxLength: settings.MaxFulltext,
		IsLive:    isLive,
	})
	records, err := builder.Build(site.FilteredByGlob(settings.Collections.Posts), cols)
	if err != nil {
		return fmt.Errorf("failed to build search records: %w", err)
	}

	logChanges(ctx, params.ReadPrevious, settings.Output, records)

	if err := params.WriteRecords(settings.Output, records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	slog.InfoContext(ctx, "Wrote search records", "count", len(records), "output", settings.Output)
	return nil
}

// logChanges compares the records with the previous output file, if there is one.
func logChanges(ctx context.Context, readPrevious func(string) ([]domain.SearchRecord, error), path string, records []domain.SearchRecord) {
	if readPrevious == nil || path == output.Stdout {
		return
	}

	previous, err := readPrevious(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.WarnContext(ctx, "Failed to read previous records", "output", path, "error", err)
		}
		return
	}

	changes := output.Diff(previous, records)
	slog.InfoContext(ctx, "Record changes since last build",
		"added", changes.Added,
		"removed", changes.Removed,
		"updated", changes.Updated,
		"unchanged", changes.Unchanged)
}

// LoadContent loads the content directory named by the settings
func LoadContent(ctx context.Context, settings *config.Settings) (*content.Collection, error) {
	return content.NewLoader(settings.BaseURL).Load(ctx, settings.ContentDir)
}
