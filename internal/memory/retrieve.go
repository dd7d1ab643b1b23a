// ABOUTME: Collects recent short-term and long-term memory into one text blob
// ABOUTME: Optional query filters lines case-insensitively, skipping empty sections
package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Collect gathers every daily record dated within the last days days plus
// the long-term fact store. With a query, only lines containing it
// (case-insensitive) are included and sections with zero matches are
// dropped. An empty result means no memory is available, not an error.
func (s *Store) Collect(query string, days int) (string, error) {
	if days <= 0 {
		return "", fmt.Errorf("%w: days must be positive, got %d", ErrInvalidInput, days)
	}

	// Calendar-day window compared on YYYY-MM-DD strings, which order
	// lexically, so the process timezone never shifts the boundary
	cutoff := s.today().AddDate(0, 0, -days).Format(dateLayout)
	parts := []string{}

	entries, err := os.ReadDir(s.layout.ShortDir())
	if err != nil {
		return "", fmt.Errorf("failed to read short-term directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".md" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		// Derived summaries and stray files don't parse as dates; only
		// plain <date>.md records participate in retrieval.
		date := strings.TrimSuffix(name, ".md")
		if _, err := time.Parse(dateLayout, date); err != nil {
			continue
		}
		if date < cutoff {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.layout.ShortDir(), name))
		if err != nil {
			continue
		}
		content := string(data)

		if query == "" {
			parts = append(parts, content)
			continue
		}
		if filtered := filterLines(content, query); len(filtered) > 0 {
			parts = append(parts, "## "+name+"\n"+strings.Join(filtered, "\n"))
		}
	}

	if longTerm, err := s.ReadAll(); err == nil && longTerm != "" {
		if query == "" {
			parts = append(parts, "## "+longTermFileName+"\n"+longTerm)
		} else if filtered := filterLines(longTerm, query); len(filtered) > 0 {
			parts = append(parts, "## "+longTermFileName+"\n"+strings.Join(filtered, "\n"))
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n\n")), nil
}

// filterLines returns the lines of content containing query, ignoring case
func filterLines(content, query string) []string {
	needle := strings.ToLower(query)
	var matched []string
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), needle) {
			matched = append(matched, line)
		}
	}
	return matched
}
