// ABOUTME: Resolves the on-disk layout for a memory root directory
// ABOUTME: Owns no data; creates directories and default files idempotently
package memory

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	indexFileName    = "index.json"
	longTermFileName = "long-term.md"
	longTermHeader   = "# Long-term Memories\n\n"
	emptyIndexJSON   = "{\n  \"files\": {}\n}\n"
)

// Layout resolves every path in the memory store from a single root
type Layout struct {
	Root string
}

// NewLayout creates a layout rooted at the given directory
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// ShortDir returns the directory holding daily short-term records
func (l Layout) ShortDir() string {
	return filepath.Join(l.Root, "short")
}

// LongDir returns the directory holding the long-term fact store
func (l Layout) LongDir() string {
	return filepath.Join(l.Root, "long")
}

// IndexPath returns the path of the retention index file
func (l Layout) IndexPath() string {
	return filepath.Join(l.Root, indexFileName)
}

// LongTermPath returns the path of the long-term fact store document
func (l Layout) LongTermPath() string {
	return filepath.Join(l.LongDir(), longTermFileName)
}

// DailyPath returns the path of the daily record for a date string
func (l Layout) DailyPath(date string) string {
	return filepath.Join(l.ShortDir(), date+".md")
}

// SummaryPath returns the path of a derived summary for a date and stage
func (l Layout) SummaryPath(date string, stage Stage) string {
	return filepath.Join(l.ShortDir(), fmt.Sprintf("%s.summary.%s.md", date, stage))
}

// Init creates the directory tree and default files if absent.
// Safe to call on every process start.
func (l Layout) Init() error {
	for _, dir := range []string{l.ShortDir(), l.LongDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(l.IndexPath()); os.IsNotExist(err) {
		if err := os.WriteFile(l.IndexPath(), []byte(emptyIndexJSON), 0644); err != nil {
			return fmt.Errorf("failed to write default index: %w", err)
		}
	}

	if _, err := os.Stat(l.LongTermPath()); os.IsNotExist(err) {
		if err := os.WriteFile(l.LongTermPath(), []byte(longTermHeader), 0644); err != nil {
			return fmt.Errorf("failed to write default long-term file: %w", err)
		}
	}

	return nil
}
