package terminal

// AttrStack is the save/restore stack for pen attributes (XTPUSHSGR /
// XTPOPSGR). Entries are opaque snapshots tagged with the fields the
// caller asked to preserve. The stack is unbounded and owned by one
// terminal session.
type AttrStack struct {
	entries []attrStackEntry
}

type attrStackEntry struct {
	attrs    TextAttribute
	selector AttrSelector
}

// Push saves a snapshot of the current attributes. An empty selector
// saves every field.
func (s *AttrStack) Push(current TextAttribute, selector AttrSelector) {
	s.entries = append(s.entries, attrStackEntry{attrs: current, selector: selector})
}

// Pop restores the most recent snapshot, merging its selected fields onto
// current. Popping an empty stack is not an error: current is returned
// unchanged.
func (s *AttrStack) Pop(current TextAttribute) TextAttribute {
	if len(s.entries) == 0 {
		return current
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry.selector.apply(entry.attrs, current)
}

// Len returns the number of saved snapshots.
func (s *AttrStack) Len() int {
	return len(s.entries)
}
