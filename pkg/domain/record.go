package domain

// Record is the exploration bookkeeping of one discovered State.
//
// Records are created exactly once per distinct State, at the moment it is
// first discovered, and are never updated. Parent is the Index of the
// predecessor record, so a search history is an arena of records linked by
// index rather than by pointers or path copies.
type Record[S State] struct {
	// Index is the 1-based discovery order.
	Index int
	// State is the discovered snapshot.
	State S
	// Parent is the Index of the predecessor, or 0 for the start state.
	Parent int
	// Action is the label that produced State from its parent ("" for the start).
	Action string
}

// IsRoot reports whether the record is the start of the search.
func (r Record[S]) IsRoot() bool {
	return r.Parent == 0
}
