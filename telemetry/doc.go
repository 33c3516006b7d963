// Package telemetry provides the structured logging and metrics used by
// packages future and pool.
//
// Logging wraps log/slog (adapted from the logger package this module
// grew out of): a process-default Logger, level control, and a UseHandler
// hook so an application can swap in any slog.Handler-compatible backend
// (zapslog, etc.) without asyncx depending on that backend directly.
//
// Metrics are real Prometheus counters and a histogram, registered through
// promauto. A nil *Recorder records nothing, so instrumentation is entirely
// opt-in: callers that never construct a Recorder pay no registration cost.
package telemetry
