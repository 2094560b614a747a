// Package dedupe tracks the normalized emails accepted during a single run.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// SeenSet records normalized emails to suppress repeats within one run.
// The set only grows for the lifetime of a run; there is no eviction and
// no persistence across runs.
type SeenSet interface {
	// SeenAndRecord atomically checks if email was seen and records it if not.
	// Returns true if email was already seen, false if it was newly recorded.
	// This is the ONLY method for deduplication - thread-safe and atomic.
	SeenAndRecord(ctx context.Context, email string) bool

	Size() int64
}

// inMemorySeenSet implements SeenSet with a plain map. The pipeline is
// single-threaded, but the mutex keeps the set safe for any caller.
type inMemorySeenSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewInMemorySeenSet creates a new in-memory seen set with configuration options.
func NewInMemorySeenSet(opts ...Option) SeenSet {
	s := &inMemorySeenSet{}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}

	return s
}

// SeenAndRecord atomically checks if email was seen and records it if not.
// Returns true if email was already seen, false if it was newly recorded.
func (s *inMemorySeenSet) SeenAndRecord(_ context.Context, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[email]; exists {
		return true // Already seen
	}

	s.seen[email] = struct{}{}
	s.size.Add(1)
	return false // Newly recorded
}

// Size returns the current number of recorded emails.
func (s *inMemorySeenSet) Size() int64 {
	return s.size.Load()
}
