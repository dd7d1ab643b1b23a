// ABOUTME: Tests for the retention index
// ABOUTME: Covers entry creation, idempotence, due-window queries, and corruption recovery
package memory

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"time"
)

func TestEnsureEntry(t *testing.T) {
	store := newTestStore(t)
	fixed := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	if err := store.EnsureEntry("2026-08-31"); err != nil {
		t.Fatalf("EnsureEntry() failed: %v", err)
	}

	entry, ok := store.Entry("2026-08-31")
	if !ok {
		t.Fatal("expected an index entry for 2026-08-31")
	}
	if entry.CreatedAt != fixed.Format(time.RFC3339) {
		t.Errorf("created_at = %q, want %q", entry.CreatedAt, fixed.Format(time.RFC3339))
	}
	if entry.State != StateRaw {
		t.Errorf("state = %q, want %q", entry.State, StateRaw)
	}
	if entry.Due3d != "2026-09-03" {
		t.Errorf("due_3d = %q, want 2026-09-03", entry.Due3d)
	}
	if entry.Due7d != "2026-09-07" {
		t.Errorf("due_7d = %q, want 2026-09-07", entry.Due7d)
	}
	if entry.Due14d != "2026-09-14" {
		t.Errorf("due_14d = %q, want 2026-09-14", entry.Due14d)
	}
}

func TestEnsureEntryIdempotent(t *testing.T) {
	store := newTestStore(t)
	first := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return first }

	if err := store.EnsureEntry("2026-08-31"); err != nil {
		t.Fatalf("EnsureEntry() failed: %v", err)
	}

	// A later call with a different clock must not touch the entry
	store.now = func() time.Time { return first.Add(48 * time.Hour) }
	if err := store.EnsureEntry("2026-08-31"); err != nil {
		t.Fatalf("second EnsureEntry() failed: %v", err)
	}

	entry, _ := store.Entry("2026-08-31")
	if entry.CreatedAt != first.Format(time.RFC3339) {
		t.Errorf("created_at changed on repeat call: %q", entry.CreatedAt)
	}
}

func TestEnsureEntryRejectsBadDate(t *testing.T) {
	store := newTestStore(t)

	err := store.EnsureEntry("not-a-date")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEntriesDue(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		dates  []string
		window int
		want   []string
	}{
		{
			name:   "3d window includes records three or more days old",
			dates:  []string{"2026-08-28", "2026-08-30", "2026-08-31"},
			window: 3,
			want:   []string{"2026-08-28"},
		},
		{
			name:   "7d window",
			dates:  []string{"2026-08-20", "2026-08-24", "2026-08-26"},
			window: 7,
			want:   []string{"2026-08-20", "2026-08-24"},
		},
		{
			name:   "14d window",
			dates:  []string{"2026-08-10", "2026-08-17", "2026-08-20"},
			window: 14,
			want:   []string{"2026-08-10", "2026-08-17"},
		},
		{
			name:   "unknown window yields nothing",
			dates:  []string{"2026-08-10"},
			window: 5,
			want:   []string{},
		},
		{
			name:   "results sorted ascending",
			dates:  []string{"2026-08-12", "2026-08-10", "2026-08-11"},
			window: 14,
			want:   []string{"2026-08-10", "2026-08-11", "2026-08-12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			store.now = func() time.Time { return today }

			for _, date := range tt.dates {
				if err := store.EnsureEntry(date); err != nil {
					t.Fatalf("EnsureEntry(%s) failed: %v", date, err)
				}
			}

			got := store.EntriesDue(tt.window)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EntriesDue(%d) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestEntriesDueSkipsFutureDates(t *testing.T) {
	store := newTestStore(t)
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return today }

	// A manually edited entry dated in the future with past due-dates must
	// never be picked up
	idx := store.loadIndex()
	idx.Files["2026-09-10"] = IndexEntry{
		CreatedAt: today.Format(time.RFC3339),
		State:     StateRaw,
		Due3d:     "2026-08-01",
		Due7d:     "2026-08-01",
		Due14d:    "2026-08-01",
	}
	if err := store.saveIndex(idx); err != nil {
		t.Fatalf("saveIndex() failed: %v", err)
	}

	if got := store.EntriesDue(3); len(got) != 0 {
		t.Errorf("EntriesDue(3) = %v, want empty", got)
	}
}

func TestEntriesDueNonUTCZones(t *testing.T) {
	// A due-date that arrives exactly today must trigger regardless of
	// the process timezone, on either side of UTC
	zones := []struct {
		name string
		loc  *time.Location
	}{
		{"east of UTC", time.FixedZone("UTC+9", 9*3600)},
		{"west of UTC", time.FixedZone("UTC-5", -5*3600)},
	}

	for _, tz := range zones {
		t.Run(tz.name, func(t *testing.T) {
			store := newTestStore(t)
			today := time.Date(2026, 8, 31, 12, 0, 0, 0, tz.loc)
			store.now = func() time.Time { return today }

			date := today.AddDate(0, 0, -3).Format("2006-01-02")
			if err := store.EnsureEntry(date); err != nil {
				t.Fatalf("EnsureEntry(%s) failed: %v", date, err)
			}

			got := store.EntriesDue(3)
			if len(got) != 1 || got[0] != date {
				t.Errorf("EntriesDue(3) = %v, want [%s]", got, date)
			}
		})
	}
}

func TestLoadIndexRecoversFromCorruption(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.layout.IndexPath(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to corrupt index: %v", err)
	}

	if got := store.EntriesDue(3); len(got) != 0 {
		t.Errorf("EntriesDue(3) on corrupt index = %v, want empty", got)
	}

	// The store must still accept new entries after corruption
	if err := store.EnsureEntry("2026-08-31"); err != nil {
		t.Fatalf("EnsureEntry() after corruption failed: %v", err)
	}
	if _, ok := store.Entry("2026-08-31"); !ok {
		t.Error("expected entry to be recreated after corruption")
	}
}
