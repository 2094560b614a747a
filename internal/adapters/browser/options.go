package browser

import "time"

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithHeadless toggles headless mode. Defaults to on.
func WithHeadless(headless bool) Option {
	return func(s *Session) {
		s.headless = headless
	}
}

// WithTimeout bounds each individual page load, the only operation in the
// pipeline allowed to block for a configurable duration.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithWaitSelector sets the CSS selector a listing page must render before
// its HTML is considered loaded.
func WithWaitSelector(sel string) Option {
	return func(s *Session) {
		if sel != "" {
			s.waitSelector = sel
		}
	}
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) Option {
	return func(s *Session) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}
