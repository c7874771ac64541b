// Package sort implements the rational sort: the canonical value store and
// the registration of its primitive operations.
//
// The host engine's value slots are fixed-width scalars, too small to embed
// a fraction directly. The Store therefore canonicalizes each distinct
// reduced rational into a compact handle: equal values always map to the
// same handle, so the host's term hashing and deduplication reduce to
// handle equality. The table is append-only and lives for the process run;
// handles are never reused or invalidated.
//
// The Store is an explicit object rather than a package-level singleton so
// tests and embedders can run independent instances side by side.
//
// ARCHITECTURE:
//
// Interning is the single shared critical section: one mutex spans the
// presence check and the append, so two goroutines interning the same value
// concurrently always receive the same handle. The section does no I/O.
// Every primitive is pure over values resolved from the store and needs no
// locking of its own beyond the resolve/intern calls it makes.
package sort
