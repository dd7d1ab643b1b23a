// ABOUTME: Tests for chat turn ID generation
// ABOUTME: Verifies format and uniqueness
package models

import (
	"strings"
	"testing"
)

func TestNewTurnID(t *testing.T) {
	id := NewTurnID()

	if !strings.HasPrefix(id, "turn_") {
		t.Errorf("id = %q, want turn_ prefix", id)
	}
	// turn_YYYYMMDD_HHMMSS_<8 hex chars>
	parts := strings.Split(id, "_")
	if len(parts) != 4 {
		t.Fatalf("id = %q, want four underscore-separated parts", id)
	}
	if len(parts[1]) != 8 || len(parts[2]) != 6 || len(parts[3]) != 8 {
		t.Errorf("unexpected part lengths in %q", id)
	}

	if NewTurnID() == id {
		t.Error("consecutive IDs should differ")
	}
}
