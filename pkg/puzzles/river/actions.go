package river

import (
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/dsl"
)

// rules is the compiled, bitmask form of a Definition.
type rules struct {
	all       uint64
	capacity  int
	forbidden []uint64
}

// safe reports whether the entities in group may stay without the carrier.
func (r rules) safe(group uint64) bool {
	for _, f := range r.forbidden {
		if group&f == f {
			return false
		}
	}
	return true
}

// canCross reports whether the carrier may row to the given shore: the load
// fits in the boat and the shore being left is safe.
func (r rules) canCross(to Shore) func(State) bool {
	from := to.Opposite()
	return func(s State) bool {
		return s.Carrier == from && s.load() <= r.capacity && r.safe(s.on(from, r.all))
	}
}

func cross(to Shore) func(State) State {
	return func(s State) State {
		s.Carrier = to
		return s
	}
}

func buildActions(def *Definition) []domain.Action[State] {
	r := rules{
		all:      def.mask(def.Entities),
		capacity: def.Capacity,
	}
	for _, group := range def.Forbidden {
		r.forbidden = append(r.forbidden, def.mask(group))
	}

	b := dsl.New[State]()
	b.Add("boat to the right shore").When(r.canCross(Right)).Do(cross(Right))
	b.Add("boat to the left shore").When(r.canCross(Left)).Do(cross(Left))

	for i, name := range def.Entities {
		bit := uint64(1) << uint(i)
		b.Add("pickup " + name).
			When(func(s State) bool {
				return s.on(s.Carrier, r.all)&bit != 0 && s.load() < r.capacity
			}).
			Do(func(s State) State {
				s.Carried |= bit
				s.OnRight &^= bit
				return s
			})
		b.Add("drop " + name).
			When(func(s State) bool { return s.Carried&bit != 0 }).
			Do(func(s State) State {
				s.Carried &^= bit
				if s.Carrier == Right {
					s.OnRight |= bit
				}
				return s
			})
	}
	return b.MustBuild()
}
