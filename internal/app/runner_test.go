package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sha1n/sitesearch/internal/config"
	"github.com/sha1n/sitesearch/internal/content"
	"github.com/sha1n/sitesearch/internal/domain"
	"github.com/sha1n/sitesearch/internal/output"
	"github.com/sha1n/sitesearch/internal/searchindex"
	"github.com/spf13/pflag"
)

// noopValidate is a no-op validation function for tests
func noopValidate(*config.Settings) error {
	return nil
}

var fixedNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testSettings(contentDir, out string) *config.Settings {
	return &config.Settings{
		ContentDir:  contentDir,
		Output:      out,
		BaseURL:     "https://example.com",
		Lang:        "en",
		MaxFulltext: 7500,
		LogLevel:    config.LogLevelInfo,
		Collections: config.CollectionSettings{
			Posts:       "posts/**/*.md",
			Authors:     "authors/*.md",
			Newsletters: "newsletters/**/*.md",
			Tags:        "tags/*.md",
		},
	}
}

// writeSite creates a small content tree under dir
func writeSite(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, body := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(full, []byte(body), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}

func sampleSite() map[string]string {
	return map[string]string{
		"posts/hello.md":         "---\ntitle: Hello\ntags: [post, go]\nauthors: [jane]\ndate: 2024-01-01\n---\nHello **world**.\n",
		"posts/future.md":        "---\ntitle: Future\ntags: [post]\ndate: 2030-01-01\n---\nlater\n",
		"posts/draft.md":         "---\ntitle: Draft\ntags: [post]\ndraft: true\n---\nwip\n",
		"authors/jane.md":        "---\ntitle: Jane Doe\ndescription: Writes about Go.\n---\n",
		"newsletters/issue-1.md": "---\ntitle: Issue 1\ndate: 2024-02-01\n---\nNews.\n",
		"tags/go.md":             "---\ntitle: Go\ndescription: The Go language.\n---\n",
		"pages/about.md":         "---\ntitle: About\n---\nAbout us.\n",
	}
}

func TestRunWithDeps_ErrorCases(t *testing.T) {
	tests := []struct {
		name           string
		params         RunParams
		wantErrContain string
	}{
		{
			name: "LoadSettings error",
			params: RunParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return nil, errors.New("settings error")
				},
				ValidSettings: noopValidate,
			},
			wantErrContain: "failed to load settings",
		},
		{
			name: "ValidSettings error",
			params: RunParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return testSettings("content", "out.json"), nil
				},
				ValidSettings: func(*config.Settings) error {
					return errors.New("validation error")
				},
			},
			wantErrContain: "invalid configuration",
		},
		{
			name: "LoadContent error",
			params: RunParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return testSettings("content", "out.json"), nil
				},
				ValidSettings: noopValidate,
				LoadContent: func(context.Context, *config.Settings) (*content.Collection, error) {
					return nil, errors.New("load error")
				},
				Now:       func() time.Time { return fixedNow },
				LogOutput: &bytes.Buffer{},
			},
			wantErrContain: "failed to load content",
		},
		{
			name: "unknown author",
			params: RunParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return testSettings("content", "out.json"), nil
				},
				ValidSettings: noopValidate,
				LoadContent: func(context.Context, *config.Settings) (*content.Collection, error) {
					return content.NewCollection([]domain.ContentItem{{
						InputPath: "posts/a.md",
						Data: domain.ItemData{
							Title:   "A",
							Tags:    []string{"post"},
							Authors: []string{"ghost"},
							Page:    domain.Page{URL: "/posts/a/"},
						},
					}}), nil
				},
				Now:       func() time.Time { return fixedNow },
				LogOutput: &bytes.Buffer{},
			},
			wantErrContain: "failed to build search records",
		},
		{
			name: "duplicate author key",
			params: RunParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return testSettings("content", "out.json"), nil
				},
				ValidSettings: noopValidate,
				LoadContent: func(context.Context, *config.Settings) (*content.Collection, error) {
					return content.NewCollection([]domain.ContentItem{
						{InputPath: "authors/a.md", Data: domain.ItemData{Key: "x"}},
						{InputPath: "authors/b.md", Data: domain.ItemData{Key: "x"}},
					}), nil
				},
				Now:       func() time.Time { return fixedNow },
				LogOutput: &bytes.Buffer{},
			},
			wantErrContain: "failed to build collections",
		},
		{
			name: "WriteRecords error",
			params: RunParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return testSettings("content", "-"), nil
				},
				ValidSettings: noopValidate,
				LoadContent: func(context.Context, *config.Settings) (*content.Collection, error) {
					return content.NewCollection(nil), nil
				},
				WriteRecords: func(string, []domain.SearchRecord) error {
					return errors.New("disk full")
				},
				Now:       func() time.Time { return fixedNow },
				LogOutput: &bytes.Buffer{},
			},
			wantErrContain: "failed to write records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RunWithDeps(context.Background(), tt.params, nil, "test")
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErrContain)
			}
			if !strings.Contains(err.Error(), tt.wantErrContain) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErrContain, err.Error())
			}
		})
	}
}

func TestRunWithDeps_UnknownAuthorIsDetectable(t *testing.T) {
	params := RunParams{
		LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
			return testSettings("content", "-"), nil
		},
		ValidSettings: noopValidate,
		LoadContent: func(context.Context, *config.Settings) (*content.Collection, error) {
			return content.NewCollection([]domain.ContentItem{{
				InputPath: "posts/a.md",
				Data: domain.ItemData{
					Title:   "A",
					Tags:    []string{"post"},
					Authors: []string{"ghost"},
					Page:    domain.Page{URL: "/posts/a/"},
				},
			}}), nil
		},
		WriteRecords: func(string, []domain.SearchRecord) error {
			t.Error("WriteRecords must not be called after a failed build")
			return nil
		},
		Now:       func() time.Time { return fixedNow },
		LogOutput: &bytes.Buffer{},
	}

	err := RunWithDeps(context.Background(), params, nil, "test")
	if !errors.Is(err, searchindex.ErrUnknownAuthor) {
		t.Errorf("Expected ErrUnknownAuthor, got %v", err)
	}
}

func TestRunWithDeps_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir, sampleSite())
	outPath := filepath.Join(dir, "public", "search-records.json")

	var logs bytes.Buffer
	params := DefaultRunParams()
	params.LoadSettings = func(*pflag.FlagSet) (*config.Settings, error) {
		return testSettings(dir, outPath), nil
	}
	params.Now = func() time.Time { return fixedNow }
	params.LogOutput = &logs

	if err := RunWithDeps(context.Background(), params, nil, "test"); err != nil {
		t.Fatalf("RunWithDeps failed: %v", err)
	}

	records, err := output.ReadRecords(outPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var ids []string
	for _, rec := range records {
		ids = append(ids, rec.ObjectID)
	}
	want := []string{
		"/posts/hello/#en",
		"/authors/jane/#en",
		"/newsletters/issue-1/#en",
		"/tags/go/#en",
	}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Fatalf("Record IDs = %v, want %v", ids, want)
	}

	hello := records[0]
	if hello.URL != "https://example.com/posts/hello/" {
		t.Errorf("Post URL = %q", hello.URL)
	}
	if hello.Fulltext != "Hello world." {
		t.Errorf("Post fulltext = %q, want plain text", hello.Fulltext)
	}
	if len(hello.Authors) != 1 || hello.Authors[0] != "Jane Doe" {
		t.Errorf("Post authors = %v", hello.Authors)
	}
	if strings.Join(hello.Tags, ",") != "post,go" {
		t.Errorf("Post tags = %v", hello.Tags)
	}

	jane := records[1]
	if jane.Fulltext != "Writes about Go." {
		t.Errorf("Author fulltext = %q", jane.Fulltext)
	}

	goTag := records[3]
	if goTag.Title != "Go" || goTag.Description != "The Go language." {
		t.Errorf("Unexpected tag record: %+v", goTag)
	}

	if !strings.Contains(logs.String(), "Wrote search records") {
		t.Errorf("Expected summary in logs, got: %s", logs.String())
	}
}

func TestRunWithDeps_IncludeDrafts(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir, sampleSite())

	var written []domain.SearchRecord
	params := DefaultRunParams()
	params.LoadSettings = func(*pflag.FlagSet) (*config.Settings, error) {
		s := testSettings(dir, "-")
		s.IncludeDrafts = true
		return s, nil
	}
	params.WriteRecords = func(_ string, records []domain.SearchRecord) error {
		written = records
		return nil
	}
	params.Now = func() time.Time { return fixedNow }
	params.LogOutput = &bytes.Buffer{}

	if err := RunWithDeps(context.Background(), params, nil, "test"); err != nil {
		t.Fatalf("RunWithDeps failed: %v", err)
	}

	found := false
	for _, rec := range written {
		if rec.ObjectID == "/posts/draft/#en" {
			found = true
		}
		if rec.ObjectID == "/posts/future/#en" {
			t.Error("Future post must stay excluded")
		}
	}
	if !found {
		t.Error("Expected draft post when drafts are included")
	}
}

func TestRunWithDeps_LogsChangesSincePreviousBuild(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir, sampleSite())
	outPath := filepath.Join(dir, "records.json")

	previous := []domain.SearchRecord{
		{ObjectID: "/posts/hello/#en", Title: "Old title"},
		{ObjectID: "/posts/removed/#en"},
	}
	if err := output.WriteRecords(outPath, previous); err != nil {
		t.Fatalf("Failed to seed previous records: %v", err)
	}

	var logs bytes.Buffer
	params := DefaultRunParams()
	params.LoadSettings = func(*pflag.FlagSet) (*config.Settings, error) {
		return testSettings(dir, outPath), nil
	}
	params.Now = func() time.Time { return fixedNow }
	params.LogOutput = &logs

	if err := RunWithDeps(context.Background(), params, nil, "test"); err != nil {
		t.Fatalf("RunWithDeps failed: %v", err)
	}

	out := logs.String()
	for _, want := range []string{"added=3", "removed=1", "updated=1", "unchanged=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in logs, got: %s", want, out)
		}
	}
}

func TestRunWithDeps_MalformedPreviousRecordsIgnored(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "records.json")
	if err := os.WriteFile(outPath, []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	var logs bytes.Buffer
	params := DefaultRunParams()
	params.LoadSettings = func(*pflag.FlagSet) (*config.Settings, error) {
		return testSettings(dir, outPath), nil
	}
	params.Now = func() time.Time { return fixedNow }
	params.LogOutput = &logs

	if err := RunWithDeps(context.Background(), params, nil, "test"); err != nil {
		t.Fatalf("RunWithDeps failed: %v", err)
	}
	if !strings.Contains(logs.String(), "Failed to read previous records") {
		t.Error("Expected a warning about the unreadable previous output")
	}
	if _, err := output.ReadRecords(outPath); err != nil {
		t.Errorf("Expected output to be replaced with valid records: %v", err)
	}
}

func TestDefaultRunParams(t *testing.T) {
	params := DefaultRunParams()

	if params.LoadSettings == nil {
		t.Error("LoadSettings is nil")
	}
	if params.ValidSettings == nil {
		t.Error("ValidSettings is nil")
	}
	if params.LoadContent == nil {
		t.Error("LoadContent is nil")
	}
	if params.ReadPrevious == nil {
		t.Error("ReadPrevious is nil")
	}
	if params.WriteRecords == nil {
		t.Error("WriteRecords is nil")
	}
	if params.Now == nil {
		t.Error("Now is nil")
	}
}
