package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrefixedWriterStampsLines(t *testing.T) {
	var out bytes.Buffer
	w := &prefixedWriter{service: "planner", out: &out}

	if _, err := w.Write([]byte("first\nsecond\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, " planner ") {
			t.Fatalf("missing service tag: %q", line)
		}
	}
	if !strings.HasSuffix(lines[0], "first") || !strings.HasSuffix(lines[1], "second") {
		t.Fatalf("unexpected content: %v", lines)
	}
}

func TestPrefixedWriterBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	w := &prefixedWriter{service: "planner", out: &out}

	if _, err := w.Write([]byte("par")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("partial line should not flush: %q", out.String())
	}
	if _, err := w.Write([]byte("tial\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := out.String(); !strings.HasSuffix(strings.TrimRight(got, "\n"), "partial") {
		t.Fatalf("unexpected output: %q", got)
	}
	if strings.Count(out.String(), "\n") != 1 {
		t.Fatalf("expected a single line: %q", out.String())
	}
}
