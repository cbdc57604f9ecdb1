// Package providers implements the demonstration providers for the tour.
//
// Each provider exposes a group of standard-library demonstrations through
// a standardized tool-based interface: Definition() returns metadata and
// tool definitions, Execute() runs one tool with parameters and a run
// context and reports transcript lines in its result.
//
// Available providers:
//   - Concurrency: goroutine spawning, locked counters, shared state
//   - Time: measured sleeps, clock reads, token-bucket pacing
//   - Collections: maps, sets, transformation chains, statistics
//   - Fileio: round-trips, paths, structured formats, compression
//   - System: environment, subprocesses, memory introspection
//   - Network: ephemeral TCP binding
//   - Values: results, optionals, formatting, operators, dynamic casts
//   - Futures: poll/waker contract over immediate and deferred values
//   - Recovery: controlled panics caught at one boundary
package providers
