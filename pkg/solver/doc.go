// Package solver serves puzzle plans with caching and coalescing.
//
// A Manager searches each puzzle at most once: the report is persisted in a
// ports.PlanStore, and concurrent requests for the same puzzle wait on a
// per-puzzle lock (optionally a distributed one) and then read the stored plan.
package solver
