package paging

import (
	"context"
	"strings"
	"testing"

	"github.com/ncobase/npage/operation"
)

func TestMapSequence(t *testing.T) {
	op := newFakeOp("List",
		operation.MapDocument{"Items": []any{"a", "b"}, "NextMarker": "m1"},
		operation.MapDocument{"Items": []any{"c"}},
	)
	it := NewIterator(op, listConfig, nil)

	upper := Map(it, func(v any) any { return strings.ToUpper(v.(string)) })

	items, err := Collect(context.Background(), upper)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := []any{"A", "B", "C"}
	if len(items) != len(want) {
		t.Fatalf("items = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("items = %v, want %v", items, want)
		}
	}
	if op.backend.calls != 2 {
		t.Errorf("executed %d requests, want 2: wrapping must not alter fetching", op.backend.calls)
	}
}

func TestFilterSequence(t *testing.T) {
	op := newFakeOp("List",
		operation.MapDocument{"Items": []any{"keep-1", "drop", "keep-2"}},
	)
	it := NewIterator(op, listConfig, nil)

	kept := Filter(it, func(v any) bool { return strings.HasPrefix(v.(string), "keep") })

	items, err := Collect(context.Background(), kept)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 2 || items[0] != "keep-1" || items[1] != "keep-2" {
		t.Fatalf("items = %v, want [keep-1 keep-2]", items)
	}
}

func TestComposedSequences(t *testing.T) {
	op := newFakeOp("List",
		operation.MapDocument{"Items": []any{"a", "bb", "ccc"}},
	)
	it := NewIterator(op, listConfig, nil)

	seq := Map(
		Filter(it, func(v any) bool { return len(v.(string)) > 1 }),
		func(v any) any { return strings.ToUpper(v.(string)) },
	)

	items, err := Collect(context.Background(), seq)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 2 || items[0] != "BB" || items[1] != "CCC" {
		t.Fatalf("items = %v, want [BB CCC]", items)
	}
}
