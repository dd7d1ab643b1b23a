// ABOUTME: Persisted index mapping calendar dates to retention metadata
// ABOUTME: Single source of truth for the retention scheduler; entries are never removed
package memory

import (
	"encoding/json"
	"os"
	"sort"
	"time"
)

// Lifecycle states recorded in the index. The scheduler derives actions
// from due-dates; state is kept as telemetry of the last transition.
const (
	StateRaw          = "raw"
	StateSummarized3d = "summarized-3d"
	StateSummarized7d = "summarized-7d"
	StatePurged       = "purged"
)

// IndexEntry holds retention metadata for one daily record
type IndexEntry struct {
	CreatedAt string `json:"created_at"`
	State     string `json:"state"`
	Due3d     string `json:"due_3d"`
	Due7d     string `json:"due_7d"`
	Due14d    string `json:"due_14d"`
}

type indexFile struct {
	Files map[string]IndexEntry `json:"files"`
}

// loadIndex reads the index from disk. A corrupted or unreadable index
// is treated as empty rather than propagated.
func (s *Store) loadIndex() indexFile {
	idx := indexFile{Files: map[string]IndexEntry{}}

	data, err := os.ReadFile(s.layout.IndexPath())
	if err != nil {
		return idx
	}
	if err := json.Unmarshal(data, &idx); err != nil {
		return indexFile{Files: map[string]IndexEntry{}}
	}
	if idx.Files == nil {
		idx.Files = map[string]IndexEntry{}
	}
	return idx
}

func (s *Store) saveIndex(idx indexFile) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.layout.IndexPath(), append(data, '\n'), 0644)
}

// EnsureEntry creates an index entry for a date if one does not exist.
// Idempotent: an existing entry is never overwritten, so created_at and
// the due-dates stay fixed at first write.
func (s *Store) EnsureEntry(date string) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.loadIndex()
	if _, exists := idx.Files[date]; exists {
		return nil
	}

	idx.Files[date] = IndexEntry{
		CreatedAt: s.now().Format(time.RFC3339),
		State:     StateRaw,
		Due3d:     d.AddDate(0, 0, 3).Format(dateLayout),
		Due7d:     d.AddDate(0, 0, 7).Format(dateLayout),
		Due14d:    d.AddDate(0, 0, 14).Format(dateLayout),
	}
	return s.saveIndex(idx)
}

// Entry returns the index entry for a date, if present
func (s *Store) Entry(date string) (IndexEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.loadIndex().Files[date]
	return entry, ok
}

// EntriesDue returns the dates whose due-date for the given window
// (3, 7, or 14 days) is on or before today. Dates in the future are
// skipped to guard against clock skew and malformed manual entries.
// Comparisons are on the YYYY-MM-DD strings, which order lexically, so
// the process timezone never shifts a calendar-day boundary.
// Results are sorted ascending for deterministic processing order.
func (s *Store) EntriesDue(window int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today().Format(dateLayout)
	idx := s.loadIndex()

	due := []string{}
	for date, entry := range idx.Files {
		var dueStr string
		switch window {
		case 3:
			dueStr = entry.Due3d
		case 7:
			dueStr = entry.Due7d
		case 14:
			dueStr = entry.Due14d
		default:
			return []string{}
		}

		if _, err := time.Parse(dateLayout, date); err != nil {
			continue
		}
		if _, err := time.Parse(dateLayout, dueStr); err != nil {
			continue
		}
		if date > today {
			continue
		}
		if dueStr <= today {
			due = append(due, date)
		}
	}

	sort.Strings(due)
	return due
}

// setState records the last retention transition for a date. Advisory
// only; scheduling decisions never read it back.
func (s *Store) setState(date, state string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.loadIndex()
	entry, ok := idx.Files[date]
	if !ok {
		return
	}
	entry.State = state
	idx.Files[date] = entry
	if err := s.saveIndex(idx); err != nil {
		s.logger.Warn("failed to record index state", "date", date, "state", state, "error", err)
	}
}
