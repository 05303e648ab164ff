/*
Package domain contains the core types of the statespace search engine.

It defines what a search works on (States and Actions), what it produces
(Records, Results and Reports) and the events it emits while exploring.
This package is kept pure and free of I/O, following the same Hexagonal
layout as the rest of the module: engines live in internal/runtime,
storage and transports live in pkg/adapters.

# Key Entities

  - State: an immutable, comparable snapshot of the modeled world.
  - Action: a named, stateless transformation with a precondition.
  - Record: the bookkeeping of one discovered State (index, parent, label).
  - Result: the outcome of one search, with the solution steps and path.
  - Report: the type-erased, serializable view of a Result used by stores and transports.
*/
package domain
