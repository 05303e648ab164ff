// Package river implements the family of river-crossing puzzles.
//
// A carrier ferries entities between two shores, at most Capacity at a time.
// Some groups of entities may never be left on a shore without the carrier.
// Fox, Goose and Bag of Beans is the embedded default; other variants are
// described by a YAML definition with the same fields.
package river
