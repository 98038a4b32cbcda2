package services

import (
	"reflect"
	"testing"
)

func TestSelectionSetToggle(t *testing.T) {
	s := NewSelectionSet()

	s.Toggle(1, false)
	s.Toggle(2, false)
	s.Toggle(3, false)
	s.Toggle(2, true)

	if got, want := s.Current(), []int{1, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("current = %v, want %v", got, want)
	}
}

func TestSelectionSetRepeatAddKeepsDuplicates(t *testing.T) {
	s := NewSelectionSet()

	s.Toggle(7, false)
	s.Toggle(7, false)

	if got, want := s.Current(), []int{7, 7}; !reflect.DeepEqual(got, want) {
		t.Fatalf("current = %v, want %v", got, want)
	}

	// a single deselect removes every matching entry
	s.Toggle(7, true)
	if s.Len() != 0 {
		t.Fatalf("len = %d after deselect, want 0", s.Len())
	}
}

func TestSelectionSetDeselectUnknownIDIsNoOp(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle(1, false)

	s.Toggle(99, true)

	if got, want := s.Current(), []int{1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("current = %v, want %v", got, want)
	}
}

func TestSelectionSetCurrentReturnsCopy(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle(1, false)
	s.Toggle(2, false)

	got := s.Current()
	got[0] = 42

	if s.Current()[0] != 1 {
		t.Fatal("mutating the returned slice leaked into the set")
	}
}

func TestSelectionSetClear(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle(1, false)
	s.Toggle(2, false)

	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("len = %d after clear, want 0", s.Len())
	}
}
