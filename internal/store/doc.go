// Package store provides SQLite-backed persistence for the habit
// tracker: habits, timestamped occurrence records, and alias names.
//
// The Store owns the live connection handle for its lifetime. Every
// operation takes an explicit *Store receiver and a context.Context -
// there is no ambient or global connection state, which keeps the
// gateway independently testable.
//
// Structured operations use bound parameters exclusively. The only
// exception is Exec, the raw escape hatch, which runs caller-supplied
// statement text verbatim and is trusted-input-only.
//
// Failure semantics: every store-level failure is classified into the
// StoreError taxonomy (init, duplicate, malformed, busy, query) and
// surfaced to the caller. The gateway never retries and never partially
// commits - each call is a single implicit transaction, and schema
// creation runs in one explicit transaction.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity on
//     habit_records.habit and habit_names.habit
package store
