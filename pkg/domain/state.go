package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// State is the constraint satisfied by every searchable world snapshot.
//
// Equality is Go's == on the value, so two states are the same state iff all
// of their fields are equal. The visited set relies on the map hash derived
// from that equality. String is used for diagnostics only.
//
// States must be plain values: once a State is handed to a search it is
// copied into the visited set, so it must not hold pointers, maps or slices
// whose contents could still change.
type State interface {
	comparable
	fmt.Stringer
}

// Goal decides whether a State is an acceptable terminal state.
type Goal[S State] func(S) bool

// Equals returns a Goal satisfied only by states equal to target.
func Equals[S State](target S) Goal[S] {
	return func(s S) bool {
		return s == target
	}
}

// Fingerprint returns a stable 64-bit hash of the state's content.
// Equal states always produce equal fingerprints. Discover events and
// exported graph nodes carry it so a state can be recognised across runs.
func Fingerprint[S State](s S) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%#v", s))
}

// FingerprintString is Fingerprint rendered as fixed-width hex.
func FingerprintString[S State](s S) string {
	return fmt.Sprintf("%016x", Fingerprint(s))
}
