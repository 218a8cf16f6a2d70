package txlog

import (
	"testing"
)

func TestIteratorNextTraversesEntriesInOrder(t *testing.T) {
	l := New[int](WithSeed(11))

	for _, offset := range []uint64{1, 3, 5} {
		l.Append(offset, int(offset*10))
	}

	it := l.Iterator()
	if it.Valid() {
		t.Fatalf("expected fresh iterator to be positioned before the first entry")
	}

	var offsets []uint64
	for it.Next() {
		o := it.Offset()
		v := it.Value()
		offsets = append(offsets, o)
		if expected := int(o * 10); v != expected {
			t.Fatalf("expected value %d for offset %d, got %d", expected, o, v)
		}
		if it.Level() < 1 {
			t.Fatalf("expected entry at offset %d to span at least one lane", o)
		}
	}

	expectedOffsets := []uint64{1, 3, 5}
	if len(offsets) != len(expectedOffsets) {
		t.Fatalf("expected %d offsets from iterator, got %d", len(expectedOffsets), len(offsets))
	}
	for i, want := range expectedOffsets {
		if offsets[i] != want {
			t.Fatalf("expected offset %d at position %d, got %d", want, i, offsets[i])
		}
	}

	if it.Valid() {
		t.Fatalf("expected iterator to be invalid after exhaustion")
	}
	if it.Next() {
		t.Fatalf("expected exhausted iterator to stay exhausted")
	}
	if it.Offset() != 0 || it.Value() != 0 || it.Level() != 0 {
		t.Fatalf("expected zero values from an invalid iterator")
	}
}

func TestIteratorOnEmptyLog(t *testing.T) {
	it := New[string]().Iterator()
	if it.Next() {
		t.Fatalf("expected no entries in an empty log")
	}

	var nilIt *Iterator[string]
	if nilIt.Valid() || nilIt.Next() {
		t.Fatalf("expected nil iterator to be invalid")
	}
}

func TestIteratorSeesLaterAppends(t *testing.T) {
	l := New[string]()
	l.Append(0, "a")

	it := l.Iterator()
	if !it.Next() || it.Value() != "a" {
		t.Fatalf("expected first entry")
	}

	l.Append(1, "b")
	if !it.Next() || it.Value() != "b" {
		t.Fatalf("expected iterator to continue onto the appended entry")
	}
}

func TestIteratorResumesAfterExhaustion(t *testing.T) {
	l := New[string]()
	it := l.Iterator()
	if it.Next() {
		t.Fatalf("expected no entries in an empty log")
	}

	l.Append(0, "a")
	if !it.Next() || it.Value() != "a" {
		t.Fatalf("expected iterator to pick up the first entry appended after exhaustion")
	}
	if it.Next() {
		t.Fatalf("expected iterator to be exhausted after the only entry")
	}

	l.Append(1, "b")
	l.Append(2, "c")
	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected iterator to resume after the last visited entry, got %v", got)
	}
}
