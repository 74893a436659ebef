package determinism

import (
	"testing"
)

func TestHashJSONIsStable(t *testing.T) {
	a, err := HashJSON(map[string]int{"b": 2, "a": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := HashJSON(map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("equal values hashed differently: %s vs %s", a, b)
	}
	if len(a.Hex()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a.Hex()))
	}

	c, _ := HashJSON(map[string]int{"a": 1, "b": 3})
	if a == c {
		t.Error("different values hashed the same")
	}
}

func TestHashJSONRejectsUnencodable(t *testing.T) {
	if _, err := HashJSON(make(chan int)); err == nil {
		t.Error("expected error for channel")
	}
}

func TestSortSliceIsStable(t *testing.T) {
	type item struct {
		key   int
		order int
	}
	items := []item{{2, 0}, {1, 1}, {2, 2}, {1, 3}}
	SortSlice(items, func(a, b item) bool { return a.key < b.key })

	want := []int{1, 3, 0, 2}
	for i, it := range items {
		if it.order != want[i] {
			t.Fatalf("position %d: expected original index %d, got %d", i, want[i], it.order)
		}
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"rent": 1, "cleaning_fee": 2, "key_money": 3})
	want := []string{"cleaning_fee", "key_money", "rent"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
