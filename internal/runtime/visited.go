package runtime

import (
	"github.com/aretw0/statespace/pkg/domain"
)

// visitedSet maps state content to its exploration record.
// Records are kept in an arena in discovery order; records[i] has Index i+1.
type visitedSet[S domain.State] struct {
	index   map[S]int
	records []domain.Record[S]
}

func newVisitedSet[S domain.State]() *visitedSet[S] {
	return &visitedSet[S]{
		index: make(map[S]int),
	}
}

// discover records state as reached from parent through action, unless an
// equal state is already known. The lookup and the insert form one step, so a
// state content can never receive two records.
func (v *visitedSet[S]) discover(state S, parent int, action string) (domain.Record[S], bool, error) {
	if idx, ok := v.index[state]; ok {
		rec, err := v.get(idx)
		return rec, false, err
	}

	rec := domain.Record[S]{
		Index:  len(v.records) + 1,
		State:  state,
		Parent: parent,
		Action: action,
	}
	v.records = append(v.records, rec)
	v.index[state] = rec.Index

	if len(v.index) != len(v.records) {
		return rec, true, &domain.InvariantError{Reason: "visited index and record arena out of sync", Index: rec.Index}
	}
	return rec, true, nil
}

// get returns the record with the given discovery index.
func (v *visitedSet[S]) get(idx int) (domain.Record[S], error) {
	if idx < 1 || idx > len(v.records) {
		return domain.Record[S]{}, &domain.InvariantError{Reason: "index not present in the visited set", Index: idx}
	}
	return v.records[idx-1], nil
}

func (v *visitedSet[S]) len() int {
	return len(v.records)
}
