// Package scrape coordinates listing pagination, per-page retries with
// exponential backoff, and inter-page rate limiting.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Default fetch behavior. Every knob is adjustable through options.
const (
	defaultMaxAttempts = 3
	defaultBackoffBase = 2 * time.Second
	defaultBackoffMax  = 30 * time.Second
	defaultMaxPages    = 20
	defaultPageRate    = rate.Limit(0.5) // two seconds between page loads
)

// Default listing paths per role category.
var defaultRolePaths = map[model.RoleType]string{
	model.RoleUGCCreator:  "/find/ugc-creators",
	model.RoleVideoEditor: "/find/video-editors",
}

// PageLoader is the browser automation boundary: load a URL, wait for the
// listing to render or time out, return the HTML.
type PageLoader interface {
	LoadListing(ctx context.Context, pageURL string) (string, error)
}

// Extractor parses one rendered page into candidates.
type Extractor interface {
	Candidates(html string, role model.RoleType) ([]model.Candidate, error)
}

// Fetcher paginates role listings and yields raw candidates. It owns the
// retry/backoff policy for individual pages and the rate limit between
// consecutive page loads; what happens after retry exhaustion (skip or
// synthesize) is the caller's policy decision.
type Fetcher struct {
	loader    PageLoader
	extractor Extractor

	baseURL     *url.URL
	rolePaths   map[model.RoleType]string
	maxAttempts int
	backoffBase time.Duration
	backoffMax  time.Duration
	maxPages    int
	limiter     *rate.Limiter
	log         logger.Logger
}

// NewFetcher creates a Fetcher over a page loader and an extractor.
func NewFetcher(loader PageLoader, extractor Extractor, opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		loader:      loader,
		extractor:   extractor,
		rolePaths:   defaultRolePaths,
		maxAttempts: defaultMaxAttempts,
		backoffBase: defaultBackoffBase,
		backoffMax:  defaultBackoffMax,
		maxPages:    defaultMaxPages,
		limiter:     rate.NewLimiter(defaultPageRate, 1),
		log:         nil,
	}

	base, err := url.Parse("https://www.twine.net")
	if err != nil {
		return nil, err
	}
	f.baseURL = base

	// Apply all options
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	if f.log == nil {
		f.log = logger.Get().Named("fetcher")
	}

	return f, nil
}

// FetchRole paginates the listing for one role until the target candidate
// count is reached, pages run out, or a page exhausts its retries. The
// candidates gathered before a failure are returned alongside the error so
// the caller can still use them.
func (f *Fetcher) FetchRole(ctx context.Context, role model.RoleType, target int) ([]model.Candidate, error) {
	path, ok := f.rolePaths[role]
	if !ok {
		return nil, fmt.Errorf("no listing path for role %q", role)
	}

	var out []model.Candidate
	seenLinks := make(map[string]struct{})

	for page := 1; len(out) < target && page <= f.maxPages; page++ {
		// Inter-page rate limit, independent of retry backoff.
		if err := f.limiter.Wait(ctx); err != nil {
			return out, err
		}

		pageURL := f.pageURL(path, page)
		html, err := f.loadWithRetry(ctx, pageURL)
		if err != nil {
			return out, err
		}

		cands, err := f.extractor.Candidates(html, role)
		if err != nil {
			// A page that renders but cannot be parsed counts as a
			// failed fetch; later pages are unlikely to fare better.
			return out, fmt.Errorf("page %s: %w", pageURL, err)
		}

		fresh := 0
		for _, c := range cands {
			if _, dup := seenLinks[c.ProfileLink]; dup {
				continue
			}
			seenLinks[c.ProfileLink] = struct{}{}
			out = append(out, c)
			fresh++
		}

		f.log.Info(ctx, "listing page scraped",
			logger.String("role", string(role)),
			logger.Int("page", page),
			logger.Int("fresh", fresh),
			logger.Int("total", len(out)),
		)

		// No new results means the listing ran out.
		if fresh == 0 {
			break
		}
	}

	if len(out) > target {
		out = out[:target]
	}
	return out, nil
}

// loadWithRetry loads one page with an exact, bounded attempt count and
// exponential backoff between attempts.
func (f *Fetcher) loadWithRetry(ctx context.Context, pageURL string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := f.backoff(attempt)
			metrics.RecordFetchRetry()
			f.log.Warn(ctx, "retrying page fetch",
				logger.String("url", pageURL),
				logger.Int("attempt", attempt+1),
				logger.Int("max_attempts", f.maxAttempts),
				logger.Duration("backoff", delay),
				logger.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		html, err := f.loader.LoadListing(ctx, pageURL)
		if err == nil {
			metrics.RecordPageFetched()
			return html, nil
		}
		lastErr = err
	}

	metrics.RecordFetchFailure()
	return "", fmt.Errorf("page %s: attempts exhausted: %w", pageURL, lastErr)
}

// backoff returns base * 2^(attempt-1), capped.
func (f *Fetcher) backoff(attempt int) time.Duration {
	d := f.backoffBase << uint(attempt-1)
	if f.backoffMax > 0 && d > f.backoffMax {
		d = f.backoffMax
	}
	return d
}

// pageURL builds the listing URL for a page number; page 1 is the bare path.
func (f *Fetcher) pageURL(path string, page int) string {
	u := *f.baseURL
	u.Path = path
	if page > 1 {
		q := u.Query()
		q.Set("page", strconv.Itoa(page))
		u.RawQuery = q.Encode()
	}
	return u.String()
}
