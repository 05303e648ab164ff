/*
Package ports defines the driven ports (interfaces) around the search engine.

These interfaces decouple puzzle solving from external implementations,
allowing transports and drivers to work with various storage backends and
definition sources.

# Key Interfaces

  - Solver: Solves named puzzles and serves their cached plans (used by HTTP and MCP).
  - PlanStore: Persists search reports so a solved puzzle is not searched again.
  - PuzzleLoader: Retrieves raw puzzle definitions (e.g., from Loam or Memory).
  - DistributedLocker: Provides distributed locking so replicas do not solve the same puzzle concurrently.
*/
package ports
