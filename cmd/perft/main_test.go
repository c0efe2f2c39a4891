package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, 2, "", false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "depth 2: 400 nodes") {
		t.Fatalf("output %q", out.String())
	}
}

func TestRunDivideAfterMoves(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, 1, "e2e4 e7e5", true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// 29 root moves, a blank line and the total
	if len(lines) != 31 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if lines[0] != "a2a3: 1" {
		t.Fatalf("first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[30], "depth 1: 29 nodes") {
		t.Fatalf("last line %q", lines[30])
	}
}

func TestRunRejectsIllegalMoves(t *testing.T) {
	if err := run(&bytes.Buffer{}, 1, "e2e5", false); err == nil {
		t.Fatal("illegal move accepted")
	}
	if err := run(&bytes.Buffer{}, -1, "", false); err == nil {
		t.Fatal("negative depth accepted")
	}
}
