package browser

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
// Whatever the underlying cause (timeout, empty DOM, network error), fetch
// failures collapse into these two kinds at the boundary.
var (
	ErrSessionStart = errors.New("browser session start failed")
	ErrFetchTimeout = errors.New("fetch timed out")
	ErrFetchFailed  = errors.New("fetch failed")
)
