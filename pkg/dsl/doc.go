/*
Package dsl provides a fluent builder for action catalogues.

It lets a domain definition declare its actions as plain functions instead
of one named type per action kind, while keeping the catalogue order that
decides which of several equally short plans a search returns.

Example usage:

	type Counter struct{ Value int }

	func (c Counter) String() string { return strconv.Itoa(c.Value) }

	func main() {
		b := dsl.New[Counter]()

		b.Add("add 1").
			Do(func(c Counter) Counter { return Counter{c.Value + 1} })

		b.Add("add 2").
			When(func(c Counter) bool { return c.Value < 10 }).
			Do(func(c Counter) Counter { return Counter{c.Value + 2} })

		actions, err := b.Build()
		// ... pass actions to statespace.New[Counter]().Solve(...)
	}
*/
package dsl
