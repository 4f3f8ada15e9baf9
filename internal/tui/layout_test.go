package tui

import (
	"strings"
	"testing"
)

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("short", 10); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("a long line of text", 10); got != "a long ..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestFitLinesPadsAndClips(t *testing.T) {
	out := fitLines("one\ntwo", 5, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len(line) != 5 {
			t.Fatalf("expected padded line width 5, got %q", line)
		}
	}
	clipped := fitLines("a\nb\nc\nd", 1, 2)
	if len(strings.Split(clipped, "\n")) != 2 {
		t.Fatalf("expected clipped output, got %q", clipped)
	}
}
