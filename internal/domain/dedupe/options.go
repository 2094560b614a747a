// Package dedupe tracks the normalized emails accepted during a single run.
package dedupe

// Option applies a configuration option to the in-memory seen set.
type Option func(*inMemorySeenSet)

// WithInitialCapacity pre-sizes the underlying map for an expected number
// of accepted records. Values <= 0 fall back to an empty map.
func WithInitialCapacity(n int) Option {
	return func(s *inMemorySeenSet) {
		if n > 0 {
			s.seen = make(map[string]struct{}, n)
		}
	}
}
