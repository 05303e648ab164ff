/*
Package observability provides tools for monitoring and introspecting searches.

Everything here is built on domain.LifecycleHooks: Prometheus metrics, an
audit log on slog, and a Recorder that turns the hook stream into the
exploration graph (every discovered state and every evaluated transition).
The search itself never depends on this package.
*/
package observability
