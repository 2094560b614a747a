// Package browser drives a headless Chrome session through chromedp.
//
// The rest of the pipeline treats this as an opaque capability: load a URL,
// wait for a selector or time out, hand back the rendered HTML. Nothing
// outside this package imports chromedp.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultWaitSelector = `a[href*="/profile/"]`
	defaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Session owns one browser instance for the lifetime of a run.
type Session struct {
	headless     bool
	timeout      time.Duration
	waitSelector string
	userAgent    string

	browserCtx context.Context
	cancels    []context.CancelFunc
}

// NewSession launches the browser. Failure here is the one environment-level
// condition that halts a run: nothing downstream can make progress without
// the capability, so callers should treat the error as fatal.
func NewSession(ctx context.Context, opts ...Option) (*Session, error) {
	s := &Session{
		headless:     true,
		timeout:      defaultTimeout,
		waitSelector: defaultWaitSelector,
		userAgent:    defaultUserAgent,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("dns-prefetch-disable", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(s.userAgent),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	s.browserCtx = browserCtx
	s.cancels = []context.CancelFunc{cancelBrowser, cancelAlloc}

	// Run a no-op so a missing or broken Chrome binary surfaces now,
	// not on the first page load.
	if err := chromedp.Run(browserCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: %v", ErrSessionStart, err)
	}

	return s, nil
}

// LoadListing navigates to pageURL, waits for the listing selector to become
// visible, and returns the fully rendered document.
func (s *Session) LoadListing(ctx context.Context, pageURL string) (string, error) {
	// The tab context derives from the session, not the caller; honor the
	// caller's cancellation explicitly.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tctx, cancel := context.WithTimeout(s.browserCtx, s.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(tctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.WaitVisible(s.waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", ErrFetchTimeout, pageURL)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrFetchFailed, pageURL, err)
	}
	return html, nil
}

// Close tears down the browser and its allocator.
func (s *Session) Close() error {
	for _, cancel := range s.cancels {
		cancel()
	}
	return nil
}
