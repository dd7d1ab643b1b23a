// ABOUTME: Functional tests driving the CLI against a temp memory root
// ABOUTME: Runs commands through the root so flags and wiring are exercised
package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// runCLI executes the root command with args against a fresh environment
// whose memory root was already set up by the caller
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setupCLI(t *testing.T) {
	t.Helper()

	t.Setenv("MEMORY_ROOT", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")
}

func TestLogThenShow(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "log", "user", "My favorite food is curry")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if !strings.Contains(out, "✓ Logged user turn") {
		t.Errorf("unexpected log output: %q", out)
	}

	today := time.Now().Format("2006-01-02")
	out, err = runCLI(t, "show", today)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "# "+today+" (short-term)") {
		t.Errorf("missing record header: %q", out)
	}
	if !strings.Contains(out, "user: My favorite food is curry") {
		t.Errorf("missing logged turn: %q", out)
	}
}

func TestShowMissingRecord(t *testing.T) {
	setupCLI(t)

	if _, err := runCLI(t, "show", "2020-01-01"); err == nil {
		t.Error("expected an error for a missing record")
	}
}

func TestFactSaveAndDuplicate(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "fact", "like", "curry")
	if err != nil {
		t.Fatalf("fact failed: %v", err)
	}
	if !strings.Contains(out, "✓ Saved fact (fp:") {
		t.Errorf("unexpected save output: %q", out)
	}

	out, err = runCLI(t, "fact", "like", "curry")
	if err != nil {
		t.Fatalf("repeat fact failed: %v", err)
	}
	if !strings.Contains(out, "Duplicate fact, not saved (fp:") {
		t.Errorf("unexpected duplicate output: %q", out)
	}

	out, err = runCLI(t, "show", "long")
	if err != nil {
		t.Fatalf("show long failed: %v", err)
	}
	if got := strings.Count(out, "like: curry"); got != 1 {
		t.Errorf("fact appears %d times, want 1:\n%s", got, out)
	}
}

func TestRecallWithQuery(t *testing.T) {
	setupCLI(t)

	if _, err := runCLI(t, "log", "user", "I drink coffee every morning"); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if _, err := runCLI(t, "log", "user", "unrelated chatter"); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	out, err := runCLI(t, "recall", "--query", "coffee", "--days", "7")
	if err != nil {
		t.Fatalf("recall failed: %v", err)
	}
	if !strings.Contains(out, "I drink coffee every morning") {
		t.Errorf("matching line missing: %q", out)
	}
	if strings.Contains(out, "unrelated chatter") {
		t.Errorf("non-matching line leaked: %q", out)
	}
}

func TestRecallEmptyStore(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "recall", "--query", "anything")
	if err != nil {
		t.Fatalf("recall failed: %v", err)
	}
	if !strings.Contains(out, "No memory available") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestMaintainEmptyStore(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "maintain")
	if err != nil {
		t.Fatalf("maintain failed: %v", err)
	}
	for _, want := range []string{"Summarized (3d): none", "Summarized (7d): none", "Purged (14d):    none"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
