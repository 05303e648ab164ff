/*
Package statespace is a generic breadth-first state-space search engine.

A problem is described by a start State, a Goal predicate and an ordered
catalogue of Actions. The planner explores every state reachable from the
start, one breadth-first layer at a time, and returns the shortest sequence
of action labels that reaches a goal state, together with the full
exploration history.

# Concept

States are plain comparable Go values: two states are the same state when
they are ==. Every distinct state is recorded exactly once, the first time it
is discovered, with a link to its predecessor. The solution is rebuilt from
those links, so no partial path is ever copied during the search.

# Key Features

  - Shortest plans: breadth-first order guarantees the minimal number of actions.
  - Deterministic: catalogue order decides between equally short plans.
  - Observable: lifecycle hooks report discoveries, expansions and transitions.
  - Parallel: WithWorkers expands a layer concurrently without changing the result.

# Usage

	type Counter struct{ Value int }

	func (c Counter) String() string { return strconv.Itoa(c.Value) }

	func main() {
		b := dsl.New[Counter]()
		b.Add("add 1").Do(func(c Counter) Counter { return Counter{c.Value + 1} })
		b.Add("add 2").Do(func(c Counter) Counter { return Counter{c.Value + 2} })

		planner := statespace.New[Counter]()
		res, err := planner.Solve(context.Background(), Counter{0}, domain.Equals(Counter{5}), b.MustBuild())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Steps) // [add 1 add 2 add 2]
	}

See pkg/puzzles/river for a complete domain and cmd/statespace for the CLI.
*/
package statespace
