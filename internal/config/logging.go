package config

import (
	"context"
	"io"
	"log/slog"
)

// Log logs the resolved settings in a granular way, skipping irrelevant ones
func Log(s *Settings) {
	LogWithLogger(s, slog.Default())
}

// LogWithLogger logs the resolved settings using the provided logger
func LogWithLogger(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	logger.InfoContext(ctx, "Config: content_dir", "value", s.ContentDir)
	logger.InfoContext(ctx, "Config: output", "value", s.Output)
	if s.BaseURL != "" {
		logger.InfoContext(ctx, "Config: base_url", "value", s.BaseURL)
	}
	logger.InfoContext(ctx, "Config: lang", "value", s.Lang)
	logger.InfoContext(ctx, "Config: max_fulltext", "value", s.MaxFulltext)
	if s.IncludeDrafts {
		logger.InfoContext(ctx, "Config: include_drafts", "value", s.IncludeDrafts)
	}

	logger.DebugContext(ctx, "Config: collections", "value", CollectionSettingsLogValue(s.Collections))
}

// CollectionSettingsLogValue returns a slog.Value for CollectionSettings
func CollectionSettingsLogValue(c CollectionSettings) slog.Value {
	return slog.GroupValue(
		slog.String("posts", c.Posts),
		slog.String("authors", c.Authors),
		slog.String("newsletters", c.Newsletters),
		slog.String("tags", c.Tags),
	)
}

// ParseLogLevel maps a log level name to a slog.Level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a text logger writing to w at the configured level.
func NewLogger(w io.Writer, s *Settings) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLogLevel(s.LogLevel)}))
}
