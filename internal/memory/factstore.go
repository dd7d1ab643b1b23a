// ABOUTME: Deduplicated long-term fact store, one append-only markdown document
// ABOUTME: Facts carry a date, category, tag, and a short content fingerprint
package memory

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/harper/memoria/internal/models"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// categoryTags maps normalized categories to their markdown tags
var categoryTags = map[string]string{
	"like":    "#likes",
	"dislike": "#dislikes",
	"habit":   "#habits",
	"other":   "#other",
}

// Fingerprint returns a short deterministic hash over the normalized
// category and text. Normalization lowercases and collapses whitespace
// so trivially restated facts collide.
func Fingerprint(text, category string) string {
	norm := strings.ToLower(strings.TrimSpace(whitespaceRe.ReplaceAllString(category+"|"+text, " ")))
	sum := sha1.Sum([]byte(norm))
	return hex.EncodeToString(sum[:])[:12]
}

// AppendFact appends a categorized fact line unless its fingerprint already
// appears anywhere in the store. The duplicate check is a raw substring scan
// over the whole document: cheap and order-independent, with a negligible
// false-positive chance given the hash length.
func (s *Store) AppendFact(text, category string) (models.FactResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.FactResult{}, fmt.Errorf("%w: empty fact text", ErrInvalidInput)
	}

	fp := Fingerprint(text, category)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := os.ReadFile(s.layout.LongTermPath())
	if err != nil && !os.IsNotExist(err) {
		return models.FactResult{}, fmt.Errorf("failed to read fact store: %w", err)
	}

	if strings.Contains(string(existing), fp) {
		return models.FactResult{Status: models.FactDuplicate, Fingerprint: fp}, nil
	}

	if category == "" {
		category = "other"
	}
	tag, ok := categoryTags[strings.ToLower(category)]
	if !ok {
		tag = "#other"
	}

	line := fmt.Sprintf("- %s | %s: %s | %s | fp:%s\n",
		s.today().Format(dateLayout), category, text, tag, fp)
	if err := appendLine(s.layout.LongTermPath(), line); err != nil {
		return models.FactResult{}, fmt.Errorf("failed to append fact: %w", err)
	}

	return models.FactResult{Status: models.FactSaved, Fingerprint: fp}, nil
}

// ReadAll returns the full raw text of the fact store, or an empty string
// if the document is absent
func (s *Store) ReadAll() (string, error) {
	data, err := os.ReadFile(s.layout.LongTermPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read fact store: %w", err)
	}
	return string(data), nil
}
