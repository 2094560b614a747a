package scrape

import (
	"fmt"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the Fetcher. Options that take
// external input may fail, so construction reports the first bad one.
type Option func(*Fetcher) error

// WithBaseURL sets the platform base URL listing paths hang off of.
func WithBaseURL(raw string) Option {
	return func(f *Fetcher) error {
		base, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse base url %q: %w", raw, err)
		}
		f.baseURL = base
		return nil
	}
}

// WithRolePaths replaces the role -> listing path table.
func WithRolePaths(paths map[string]string) Option {
	return func(f *Fetcher) error {
		if len(paths) == 0 {
			return nil
		}
		table := make(map[model.RoleType]string, len(paths))
		for role, path := range paths {
			table[model.RoleType(role)] = path
		}
		f.rolePaths = table
		return nil
	}
}

// WithMaxAttempts sets the exact per-page attempt budget.
func WithMaxAttempts(n int) Option {
	return func(f *Fetcher) error {
		if n > 0 {
			f.maxAttempts = n
		}
		return nil
	}
}

// WithBackoff sets the base and cap of the exponential retry delay.
func WithBackoff(base, maxDelay time.Duration) Option {
	return func(f *Fetcher) error {
		if base > 0 {
			f.backoffBase = base
		}
		if maxDelay > 0 {
			f.backoffMax = maxDelay
		}
		return nil
	}
}

// WithMaxPages bounds pagination per role regardless of target count.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) error {
		if n > 0 {
			f.maxPages = n
		}
		return nil
	}
}

// WithPageRate sets the sustained page-load rate in loads per second.
func WithPageRate(perSecond float64) Option {
	return func(f *Fetcher) error {
		if perSecond > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
		return nil
	}
}

// WithLogger sets a custom logger for the fetcher.
func WithLogger(log logger.Logger) Option {
	return func(f *Fetcher) error {
		if log != nil {
			f.log = log
		}
		return nil
	}
}
