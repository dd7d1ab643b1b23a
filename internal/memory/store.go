// ABOUTME: Store is the single entry point to the file-backed memory subsystem
// ABOUTME: Wraps the layout with a process-wide mutex and an injectable clock
package memory

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const dateLayout = "2006-01-02"

// Sentinel errors for callers to match with errors.Is
var (
	// ErrNotFound indicates a daily record does not exist for the requested date
	ErrNotFound = errors.New("memory: not found")
	// ErrInvalidInput indicates a malformed date or empty message
	ErrInvalidInput = errors.New("memory: invalid input")
)

// Store manages all persistent memory data under a single root directory.
// Appends are safe for concurrent use within one process; cross-process
// writers are not coordinated.
type Store struct {
	layout Layout
	logger *log.Logger
	mu     sync.Mutex
	now    func() time.Time
}

// NewStore initializes the store, creating the on-disk layout if needed
func NewStore(root string, logger *log.Logger) (*Store, error) {
	layout := NewLayout(root)
	if err := layout.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize memory layout: %w", err)
	}

	return &Store{
		layout: layout,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Layout returns the resolved on-disk layout
func (s *Store) Layout() Layout {
	return s.layout
}

// today returns the store's current calendar date
func (s *Store) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

// parseDate validates a YYYY-MM-DD date string
func parseDate(date string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	return d, nil
}
