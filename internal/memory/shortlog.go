// ABOUTME: Append-only daily short-term log, one markdown document per date
// ABOUTME: Each line records a timestamped role-tagged chat turn
package memory

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Append writes one line to the daily record for at's date, creating the
// record with a header on first write. The record's index entry is ensured
// on every append. The date is computed once from at, so a message logged
// right at a midnight boundary stays on the date it was stamped with.
func (s *Store) Append(role, text string, at time.Time) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty message", ErrInvalidInput)
	}
	if role == "" {
		return "", fmt.Errorf("%w: empty role", ErrInvalidInput)
	}

	date := at.Format(dateLayout)
	path := s.layout.DailyPath(date)

	s.mu.Lock()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		header := fmt.Sprintf("# %s (short-term)\n\n", date)
		if err := os.WriteFile(path, []byte(header), 0644); err != nil {
			s.mu.Unlock()
			return "", fmt.Errorf("failed to create daily record: %w", err)
		}
	}

	line := fmt.Sprintf("- [%s] %s: %s\n", at.Format("15:04"), role, text)
	if err := appendLine(path, line); err != nil {
		s.mu.Unlock()
		return "", fmt.Errorf("failed to append to daily record: %w", err)
	}
	s.mu.Unlock()

	if err := s.EnsureEntry(date); err != nil {
		return "", fmt.Errorf("failed to index daily record: %w", err)
	}
	return path, nil
}

// Read returns the full raw text of the daily record for a date
func (s *Store) Read(date string) (string, error) {
	if _, err := parseDate(date); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.layout.DailyPath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: no record for %s", ErrNotFound, date)
		}
		return "", fmt.Errorf("failed to read daily record: %w", err)
	}
	return string(data), nil
}

// appendLine opens, appends, and closes in one call so nothing is buffered
// in memory across restarts
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
