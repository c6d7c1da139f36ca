// Package store provides SQLite-backed history of harness runs.
//
// Each run row records the scenario name, the pass flag and the failure
// messages. Each quantities row records one bound value of that run. The
// dimension of a quantity is kept as two msgpack blobs of symbol-to-exponent
// maps, one for base axes and one for named slots.
//
// # Ordering
//
//   - Runs get seq = max(seq)+1 inside the insert transaction
//   - ListRuns orders by seq ASC, id COLLATE BINARY ASC
//   - ReadRun orders quantities by name COLLATE BINARY ASC
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
