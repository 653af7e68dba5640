package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var quiet bytes.Buffer
	l := New(&quiet, false)
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(quiet.String(), "hidden") || !strings.Contains(quiet.String(), "shown") {
		t.Fatalf("unexpected quiet output: %q", quiet.String())
	}

	var verbose bytes.Buffer
	New(&verbose, true).Debug("detail")
	if !strings.Contains(verbose.String(), "detail") {
		t.Fatalf("expected debug entry, got %q", verbose.String())
	}
}
