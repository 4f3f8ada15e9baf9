package tui

import (
	"reflect"
	"testing"
)

func TestSplitSelection(t *testing.T) {
	got := splitSelection(" WX, WY  OrigTgX ,")
	if !reflect.DeepEqual(got, []string{"WX", "WY", "OrigTgX"}) {
		t.Fatalf("unexpected selection: %v", got)
	}
	if out := splitSelection(""); len(out) != 0 {
		t.Fatalf("expected empty selection, got %v", out)
	}
}

func TestKeepKnownDropsUnknownAndDuplicates(t *testing.T) {
	available := []string{"WX", "WY"}
	got := keepKnown([]string{"WX", "bogus", "WX", "WY"}, available)
	if !reflect.DeepEqual(got, []string{"WX", "WY"}) {
		t.Fatalf("unexpected kept names: %v", got)
	}
}

func TestDefaultSelection(t *testing.T) {
	names := []string{"a", "b", "c"}
	if got := defaultSelection(names, 2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected default selection: %v", got)
	}
	if got := defaultSelection(names, 10); !reflect.DeepEqual(got, names) {
		t.Fatalf("expected all names, got %v", got)
	}
}
