package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInvocationFromArgsStdin(t *testing.T) {
	inv, err := invocationFromArgs([]string{"edition=2021", "warn=true"}, strings.NewReader("1 + 1"))
	if err != nil {
		t.Fatalf("invocationFromArgs: %v", err)
	}
	if inv.Code != "1 + 1" {
		t.Errorf("Code = %q", inv.Code)
	}
	if len(inv.Flags) != 2 {
		t.Fatalf("Flags = %v", inv.Flags)
	}
	if inv.Flags[0].Key != "edition" || inv.Flags[0].Value != "2021" {
		t.Errorf("first flag = %+v", inv.Flags[0])
	}
}

func TestInvocationFromArgsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippet.rs")
	if err := os.WriteFile(path, []byte("fn main() {}"), 0644); err != nil {
		t.Fatal(err)
	}

	inv, err := invocationFromArgs([]string{path, "edition=2018"}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("invocationFromArgs: %v", err)
	}
	if inv.Code != "fn main() {}" {
		t.Errorf("Code = %q", inv.Code)
	}
	if len(inv.Flags) != 1 {
		t.Errorf("Flags = %v", inv.Flags)
	}
}

func TestInvocationFromArgsRejectsTwoFiles(t *testing.T) {
	_, err := invocationFromArgs([]string{"a.rs", "b.rs"}, strings.NewReader(""))
	if err == nil {
		t.Error("expected error for two file arguments")
	}
}
