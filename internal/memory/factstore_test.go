// ABOUTME: Tests for the deduplicated long-term fact store
// ABOUTME: Covers fingerprinting, duplicate detection, tags, and line format
package memory

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harper/memoria/internal/models"
)

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("loves curry", "like")
	if len(fp) != 12 {
		t.Fatalf("fingerprint length = %d, want 12", len(fp))
	}
	if fp != Fingerprint("loves curry", "like") {
		t.Error("fingerprint is not deterministic")
	}

	tests := []struct {
		name      string
		text      string
		category  string
		wantMatch bool
	}{
		{"case insensitive", "LOVES CURRY", "Like", true},
		{"whitespace collapsed", "loves   curry", "like", true},
		{"leading and trailing space", "  loves curry  ", "like", true},
		{"different text", "hates curry", "like", false},
		{"different category", "loves curry", "dislike", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.text, tt.category) == fp
			if got != tt.wantMatch {
				t.Errorf("Fingerprint(%q, %q) match = %v, want %v", tt.text, tt.category, got, tt.wantMatch)
			}
		})
	}
}

func TestAppendFact(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }

	result, err := store.AppendFact("カレーが好き", "like")
	if err != nil {
		t.Fatalf("AppendFact() failed: %v", err)
	}
	if result.Status != models.FactSaved {
		t.Errorf("status = %q, want %q", result.Status, models.FactSaved)
	}
	if len(result.Fingerprint) != 12 {
		t.Errorf("fingerprint length = %d, want 12", len(result.Fingerprint))
	}

	content, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	want := "- 2026-08-31 | like: カレーが好き | #likes | fp:" + result.Fingerprint
	if !strings.Contains(content, want) {
		t.Errorf("fact store missing line %q, got:\n%s", want, content)
	}
}

func TestAppendFactDuplicate(t *testing.T) {
	store := newTestStore(t)

	first, err := store.AppendFact("カレーが好き", "like")
	if err != nil {
		t.Fatalf("first AppendFact() failed: %v", err)
	}

	// Restating the same fact with different casing and spacing must dedupe
	second, err := store.AppendFact("カレーが好き  ", "LIKE")
	if err != nil {
		t.Fatalf("second AppendFact() failed: %v", err)
	}
	if second.Status != models.FactDuplicate {
		t.Errorf("status = %q, want %q", second.Status, models.FactDuplicate)
	}
	if second.Fingerprint != first.Fingerprint {
		t.Errorf("fingerprints differ: %q vs %q", second.Fingerprint, first.Fingerprint)
	}

	content, _ := store.ReadAll()
	if got := strings.Count(content, "fp:"+first.Fingerprint); got != 1 {
		t.Errorf("fact appears %d times, want 1", got)
	}
}

func TestAppendFactCategoryTags(t *testing.T) {
	tests := []struct {
		category string
		wantTag  string
	}{
		{"like", "#likes"},
		{"dislike", "#dislikes"},
		{"habit", "#habits"},
		{"other", "#other"},
		{"unknown-category", "#other"},
		{"", "#other"},
	}

	for _, tt := range tests {
		t.Run("category "+tt.category, func(t *testing.T) {
			store := newTestStore(t)

			if _, err := store.AppendFact("some fact", tt.category); err != nil {
				t.Fatalf("AppendFact() failed: %v", err)
			}

			content, _ := store.ReadAll()
			if !strings.Contains(content, " | "+tt.wantTag+" | ") {
				t.Errorf("expected tag %q in:\n%s", tt.wantTag, content)
			}
		})
	}
}

func TestAppendFactEmptyCategoryDefaultsToOther(t *testing.T) {
	store := newTestStore(t)

	// The fingerprint is computed from the raw category, so an empty
	// category and an explicit "other" are distinct facts
	empty, err := store.AppendFact("drinks tea daily", "")
	if err != nil {
		t.Fatalf("AppendFact() failed: %v", err)
	}
	explicit, err := store.AppendFact("drinks tea daily", "other")
	if err != nil {
		t.Fatalf("AppendFact() failed: %v", err)
	}
	if empty.Fingerprint == explicit.Fingerprint {
		t.Error("empty and explicit 'other' categories should fingerprint differently")
	}
	if explicit.Status != models.FactSaved {
		t.Errorf("status = %q, want %q", explicit.Status, models.FactSaved)
	}

	content, _ := store.ReadAll()
	if !strings.Contains(content, "| other: drinks tea daily |") {
		t.Errorf("empty category not written as 'other':\n%s", content)
	}
}

func TestAppendFactEmptyText(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.AppendFact("  ", "like"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReadAllEmptyStore(t *testing.T) {
	store := newTestStore(t)

	content, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if content != "# Long-term Memories\n\n" {
		t.Errorf("unexpected initial content: %q", content)
	}
}
