// Package dump persists payloads as a timestamped historical file and a fixed "latest" file.
package dump

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// LatestName is overwritten on every run.
	LatestName = "sofascore_latest.json"

	historicalPrefix = "sofascore_dump_"
	timestampLayout  = "20060102T150405Z"
)

// Paths are the files written by one Save.
type Paths struct {
	Historical string
	Latest     string
}

// Writer writes payloads under a dump directory, creating it when absent.
type Writer struct {
	dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{
		dir: dir,
		now: time.Now,
	}
}

// HistoricalName is the file name of a dump taken at t.
func HistoricalName(t time.Time) string {
	return historicalPrefix + t.UTC().Format(timestampLayout) + ".json"
}

// Encode renders payload as 2-space indented JSON with non-ASCII and HTML characters kept literal.
func Encode(payload any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes payload to both files. The two writes are attempted independently;
// the returned error joins whatever failed.
func (w *Writer) Save(payload any) (Paths, error) {
	data, err := Encode(payload)
	if err != nil {
		return Paths{}, err
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return Paths{}, fmt.Errorf("failed to create dump directory: %w", err)
	}

	paths := Paths{
		Historical: filepath.Join(w.dir, HistoricalName(w.now())),
		Latest:     filepath.Join(w.dir, LatestName),
	}
	return paths, errors.Join(
		writeAtomic(paths.Historical, data),
		writeAtomic(paths.Latest, data),
	)
}

// writeAtomic replaces target through a temp file so readers never see a partial dump.
func writeAtomic(target string, data []byte) error {
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
