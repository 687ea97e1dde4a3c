// Package analyze provides the single-pass analytics core for Apache
// Common Log Format access logs.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - record.go: the parsed log record every analyzer consumes
//   - windowqueue.go: the sliding deque that emits window-completion events
//   - pipeline.go: the driver that feeds each record through every analyzer
//
// # Architecture
//
// Each analyzer owns its state exclusively and exposes a total Update
// method plus read-only result accessors:
//   - BusyWindows: busiest fixed-length windows, overlapping and disjoint
//   - Blocker: per-host brute-force login detection
//   - HostActivity / ResourceUsage: per-key counters with top/bottom-K
//   - TimeOfDay: daily and hourly hits with unique-host sets
//
// The pipeline runs strictly single-threaded; records flow through the
// analyzers in input order and are never retained past their update call.
// Optional ingest telemetry lives in analyze/telemetry.
package analyze
