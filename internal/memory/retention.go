// ABOUTME: Retention scheduler walking the index for due summarization and purge work
// ABOUTME: Each due-window is processed independently in a single best-effort pass
package memory

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/harper/memoria/internal/models"
)

// Stage identifies a summarization stage of the retention pipeline
type Stage string

const (
	// Stage3d is the first compression, three days after a record's date
	Stage3d Stage = "3d"
	// Stage7d is the tighter compression, seven days after a record's date
	Stage7d Stage = "7d"
)

// Summarizer compresses a daily record's text for a retention stage.
// Implementations typically call an external model; failures are logged
// and the pass moves on.
type Summarizer interface {
	Summarize(ctx context.Context, stage Stage, source string) (string, error)
}

// RunMaintenance executes one retention pass. The three due-windows are
// checked independently, never as sequential gates, so a record whose 3d
// and 14d dues have both arrived is summarized and purged in the same
// pass. Failures on one record never stop the rest of the pass.
func (s *Store) RunMaintenance(ctx context.Context, summarizer Summarizer) models.MaintenanceReport {
	report := models.MaintenanceReport{
		Summarized3d: []string{},
		Summarized7d: []string{},
		Purged14d:    []string{},
	}

	for _, spec := range []struct {
		window int
		stage  Stage
		state  string
	}{
		{3, Stage3d, StateSummarized3d},
		{7, Stage7d, StateSummarized7d},
	} {
		for _, date := range s.EntriesDue(spec.window) {
			// Purged records keep their index entries forever; only
			// records still on disk are due any work.
			if !s.recordExists(date) {
				continue
			}
			if err := s.summarizeRecord(ctx, summarizer, date, spec.stage); err != nil {
				s.logger.Warn("summarization skipped", "date", date, "stage", spec.stage, "error", err)
				continue
			}
			s.setState(date, spec.state)
			switch spec.stage {
			case Stage3d:
				report.Summarized3d = append(report.Summarized3d, date)
			case Stage7d:
				report.Summarized7d = append(report.Summarized7d, date)
			}
		}
	}

	for _, date := range s.EntriesDue(14) {
		if !s.recordExists(date) {
			continue
		}
		if err := s.purgeRecord(date); err != nil {
			s.logger.Warn("purge failed", "date", date, "error", err)
			continue
		}
		s.setState(date, StatePurged)
		report.Purged14d = append(report.Purged14d, date)
	}

	return report
}

// summarizeRecord compresses one daily record and writes the derived
// summary. Re-running a stage simply overwrites the previous summary.
func (s *Store) summarizeRecord(ctx context.Context, summarizer Summarizer, date string, stage Stage) error {
	if summarizer == nil {
		return fmt.Errorf("no summarizer configured")
	}

	source, err := s.Read(date)
	if err != nil {
		return err
	}

	summary, err := summarizer.Summarize(ctx, stage, source)
	if err != nil {
		return fmt.Errorf("summarizer failed: %w", err)
	}

	return s.WriteSummary(date, stage, summary)
}

// WriteSummary persists a derived summary for a date and stage
func (s *Store) WriteSummary(date string, stage Stage, summary string) error {
	path := s.layout.SummaryPath(date, stage)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(summary)+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s summary: %w", stage, err)
	}
	return nil
}

// recordExists reports whether the daily record file is still on disk
func (s *Store) recordExists(date string) bool {
	_, err := os.Stat(s.layout.DailyPath(date))
	return err == nil
}

// purgeRecord deletes the daily record and both derived summaries.
// Missing files are no-ops, not errors.
func (s *Store) purgeRecord(date string) error {
	paths := []string{
		s.layout.DailyPath(date),
		s.layout.SummaryPath(date, Stage3d),
		s.layout.SummaryPath(date, Stage7d),
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}
