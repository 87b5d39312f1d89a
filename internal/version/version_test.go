package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	origCommit := Commit
	defer func() { Commit = origCommit }()

	Commit = "unknown"
	if Info() != Version {
		t.Errorf("Info() = %q, want %q", Info(), Version)
	}

	Commit = "abcdef1234567890"
	want := Version + " (abcdef1)"
	if Info() != want {
		t.Errorf("Info() = %q, want %q", Info(), want)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.Contains(full, Version) {
		t.Errorf("Full() missing version: %q", full)
	}
	if !strings.Contains(full, "Commit:") {
		t.Errorf("Full() missing commit line: %q", full)
	}
}
