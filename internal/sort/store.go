package sort

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Jiacheng-WU/egglog-parallel/internal/rational"
	"github.com/Jiacheng-WU/egglog-parallel/internal/value"
)

// Store owns the bijection between reduced rational values and handles.
//
// The mapping only grows: there is no deletion, and an entry is immutable
// once appended, so a resolved value is stable for the life of the process.
// Growth is unbounded by design; Len exposes the population for hosts that
// want to impose their own capacity policy.
type Store struct {
	mu      sync.Mutex
	handles map[rational.Rat]value.Handle
	vals    []rational.Rat
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{handles: make(map[rational.Rat]value.Handle)}
}

// Intern returns the handle for r, assigning the next unused handle (the
// current population count) on first sight. Lookup-or-insert is a single
// critical section: concurrent callers interning equal values receive the
// same handle.
func (s *Store) Intern(r rational.Rat) value.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.handles[r]; ok {
		return h
	}
	h := value.Handle(len(s.vals))
	s.handles[r] = h
	s.vals = append(s.vals, r)
	return h
}

// Resolve returns the value interned under h.
//
// Passing a handle that did not come from this store is a programming
// error - the host guarantees handles it passes back originated here - and
// panics rather than returning a recoverable error.
func (s *Store) Resolve(h value.Handle) rational.Rat {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(h) >= len(s.vals) {
		panic(fmt.Sprintf("sort: resolve of unknown handle %d (population %d)", h, len(s.vals)))
	}
	return s.vals[h]
}

// Len returns the number of distinct values interned so far.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.vals)
}

// Snapshot returns a copy of the interned values in handle order.
// The copy is consistent: it is taken under the store lock.
func (s *Store) Snapshot() []rational.Rat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.vals)
}
