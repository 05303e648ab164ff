package river

import (
	"math/bits"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shore is one bank of the river.
type Shore uint8

const (
	Left Shore = iota
	Right
)

func (s Shore) String() string {
	if s == Right {
		return "Right"
	}
	return "Left"
}

// Opposite returns the other bank.
func (s Shore) Opposite() Shore {
	return 1 - s
}

// State is one configuration of a river-crossing puzzle.
//
// Entity i is carried when bit i of Carried is set; otherwise it waits on the
// right bank when bit i of OnRight is set, on the left bank when it is not.
// Initials holds one letter per entity and only serves String.
type State struct {
	Initials string
	Carrier  Shore
	OnRight  uint64
	Carried  uint64
}

// on returns the entities waiting on the given shore.
func (s State) on(shore Shore, all uint64) uint64 {
	right := s.OnRight &^ s.Carried
	if shore == Right {
		return right
	}
	return all &^ right &^ s.Carried
}

func (s State) load() int {
	return bits.OnesCount64(s.Carried)
}

// String renders the entities in definition order, lowercase on the left bank
// and uppercase on the right one, followed by the carrier's shore and load,
// e.g. "fGb L w/G".
func (s State) String() string {
	var b, carried strings.Builder
	for i, r := range []rune(s.Initials) {
		bit := uint64(1) << uint(i)
		switch {
		case s.Carried&bit != 0:
			carried.WriteRune(unicode.ToUpper(r))
		case s.OnRight&bit != 0:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	b.WriteString(" ")
	b.WriteString(s.Carrier.String()[:1])
	if carried.Len() > 0 {
		b.WriteString(" w/")
		b.WriteString(carried.String())
	}
	return b.String()
}

func initials(names []string) string {
	var b strings.Builder
	for _, name := range names {
		r, _ := utf8.DecodeRuneInString(name)
		b.WriteRune(r)
	}
	return b.String()
}
