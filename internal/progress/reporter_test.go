package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Task: "Seeding", Out: &buf}

	r.Start(2)
	r.Update(1, "usuarios")
	r.Update(2, "viajes")
	r.Finish()

	want := "Seeding: 2 steps\n[1/2] usuarios\n[2/2] viajes\nSeeding: done\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("Seeding").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	r, ok := NewReporter("Seeding").(*TerminalReporter)
	if !ok {
		t.Fatal("expected TerminalReporter outside CI")
	}
	// Update and Finish before Start are no-ops.
	r.Update(1, "x")
	r.Finish()
}
