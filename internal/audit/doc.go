// Package audit persists snapshots of a canonical store for post-run
// inspection.
//
// The live store is in-memory only: its critical section must never block
// on I/O. A dump is taken from a Snapshot copy after the fact and written to
// a standalone SQLite file, one run per call, each run tagged with a
// time-sortable UUIDv7 id. Dumps are a debugging surface, not a persistence
// layer - nothing reads them back into a live store.
package audit
