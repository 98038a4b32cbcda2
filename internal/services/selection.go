package services

// SelectionSet is a toggle-managed set of chosen ids used while composing
// a new route. One instance tracks drivers, an independent one recipients.
//
// Select appends unconditionally, so toggling the same id on twice yields
// two entries; deselect removes every matching entry. This preserves the
// established toggle behavior of the construction form (repeat-add followed
// by a single deselect still empties the id) rather than enforcing strict
// set semantics. Insertion order is kept: it becomes the participant order
// of the submitted draft.
type SelectionSet struct {
	ids []int
}

func NewSelectionSet() *SelectionSet {
	return &SelectionSet{}
}

// Toggle applies one selection event. deselect=true removes all entries
// matching id; deselect=false appends id.
func (s *SelectionSet) Toggle(id int, deselect bool) {
	if !deselect {
		s.ids = append(s.ids, id)
		return
	}

	kept := s.ids[:0]
	for _, v := range s.ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	s.ids = kept
}

// Current returns the chosen ids in insertion order. The result is a copy;
// mutating it does not affect the set.
func (s *SelectionSet) Current() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// Clear empties the set. The owning workflow calls this after a successful
// submit or when the construction session is abandoned.
func (s *SelectionSet) Clear() {
	s.ids = nil
}
