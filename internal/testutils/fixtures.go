package testutils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/dsl"
)

// Counter is the smallest useful state: a single integer.
type Counter struct {
	Value int
}

func (c Counter) String() string { return "counter=" + strconv.Itoa(c.Value) }

// CounterActions returns one "add n" action per increment, in the given order.
// When limit is positive, an action only applies if the result stays <= limit,
// which keeps the state space finite.
func CounterActions(limit int, increments ...int) []domain.Action[Counter] {
	b := dsl.New[Counter]()
	for _, n := range increments {
		a := b.Add(fmt.Sprintf("add %d", n)).
			Do(func(c Counter) Counter { return Counter{Value: c.Value + n} })
		if limit > 0 {
			a.When(func(c Counter) bool { return c.Value+n <= limit })
		}
	}
	return b.MustBuild()
}

// Carried is the location of an item held by the errand runner.
const Carried = "hands"

// ErrandItems lists the items of the errands world, in slot order.
var ErrandItems = [3]string{"bicycle", "spoon", "frisbee"}

var errandConnections = [][2]string{
	{"bedroom", "stairs"},
	{"stairs", "garage"},
	{"livingroom", "stairs"},
	{"kitchen", "stairs"},
	{"garage", "street"},
	{"street", "park"},
}

var errandLocations = []string{"bedroom", "stairs", "garage", "livingroom", "kitchen", "street", "park"}

// Errand is a state of the errands world: where the runner stands and where
// each item of ErrandItems currently is.
type Errand struct {
	Location string
	Items    [3]string
}

// ErrandStart is the runner in the bedroom with every item in its room.
func ErrandStart() Errand {
	return Errand{
		Location: "bedroom",
		Items:    [3]string{"garage", "kitchen", "livingroom"},
	}
}

// InParkWithFrisbee is the errands goal.
func InParkWithFrisbee(e Errand) bool {
	return e.Location == "park" && e.Items[2] == Carried
}

func (e Errand) String() string {
	var held []string
	for i, loc := range e.Items {
		if loc == Carried {
			held = append(held, ErrandItems[i])
		}
	}
	if len(held) == 0 {
		return "in " + e.Location
	}
	sort.Strings(held)
	return "in " + e.Location + " with " + strings.Join(held, ", ")
}

func connected(a, b string) bool {
	for _, c := range errandConnections {
		if (c[0] == a && c[1] == b) || (c[0] == b && c[1] == a) {
			return true
		}
	}
	return false
}

// ErrandActions returns the grab actions followed by the walk actions.
func ErrandActions() []domain.Action[Errand] {
	b := dsl.New[Errand]()
	for i, item := range ErrandItems {
		b.Add("grab " + item).
			When(func(e Errand) bool { return e.Items[i] == e.Location }).
			Do(func(e Errand) Errand {
				e.Items[i] = Carried
				return e
			})
	}
	for _, loc := range errandLocations {
		b.Add("walk to " + loc).
			When(func(e Errand) bool { return connected(e.Location, loc) }).
			Do(func(e Errand) Errand {
				e.Location = loc
				return e
			})
	}
	return b.MustBuild()
}
