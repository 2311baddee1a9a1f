package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sha1n/sitesearch/internal/domain"
)

// Stdout is the output path that writes records to standard output.
const Stdout = "-"

// Encode writes records as an indented JSON array. A nil list is written as [].
func Encode(w io.Writer, records []domain.SearchRecord) error {
	if records == nil {
		records = []domain.SearchRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// WriteRecords writes records to path, or to stdout when path is Stdout.
// Files are written atomically via write-to-temp + rename.
func WriteRecords(path string, records []domain.SearchRecord) error {
	if path == Stdout {
		return Encode(os.Stdout, records)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := Encode(f, records); err != nil {
		_ = f.Close()
		_ = os.Remove(tempPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename output file: %w", err)
	}

	return nil
}

// ReadRecords loads a records file written by WriteRecords.
func ReadRecords(path string) ([]domain.SearchRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var records []domain.SearchRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	return records, nil
}
