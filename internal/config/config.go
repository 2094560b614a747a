// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer sources.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseURL is the root of the site being scraped.
	BaseURL string `koanf:"base_url"`

	// TargetPerRole caps how many candidates are collected per role listing.
	TargetPerRole int `koanf:"target_per_role"`

	// MaxPages bounds pagination per role regardless of target.
	MaxPages int `koanf:"max_pages"`

	// MaxFetchAttempts bounds retries for a single page load.
	MaxFetchAttempts int `koanf:"max_fetch_attempts"`

	// FetchTimeoutMS bounds a single page load including rendering.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// BackoffBaseMS and BackoffMaxMS shape the retry delay: base doubles
	// per attempt and is capped at max.
	BackoffBaseMS int `koanf:"backoff_base_ms"`
	BackoffMaxMS  int `koanf:"backoff_max_ms"`

	// PageRatePerSec throttles page loads independently of retry backoff.
	PageRatePerSec float64 `koanf:"page_rate_per_sec"`

	// Headless controls whether the browser renders offscreen.
	Headless bool `koanf:"headless"`

	// SynthFallback enables placeholder candidates for roles whose listing
	// could not be fetched. SynthCount sets how many per failed role.
	SynthFallback bool `koanf:"synth_fallback"`
	SynthCount    int  `koanf:"synth_count"`

	// UserAgent overrides the browser user agent when non-empty.
	UserAgent string `koanf:"user_agent"`

	// Heuristic lookup data for the validation stages. Empty slices keep
	// the built-in defaults.
	BrandTokens        []string `koanf:"brand_tokens"`
	PlaceholderMarkers []string `koanf:"placeholder_markers"`
	PlaceholderDomains []string `koanf:"placeholder_domains"`

	// OutputPath is the CSV file written at the end of a run.
	OutputPath string `koanf:"output_path"`

	// MetricsAddr exposes a Prometheus endpoint when non-empty, e.g. ":9090".
	// Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with production defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		BaseURL:          "https://www.twine.net",
		TargetPerRole:    50,
		MaxPages:         20,
		MaxFetchAttempts: 3,
		FetchTimeoutMS:   15_000,
		BackoffBaseMS:    2_000,
		BackoffMaxMS:     30_000,
		PageRatePerSec:   0.5,
		Headless:         true,
		SynthFallback:    false,
		SynthCount:       25,
		UserAgent:        "",
		OutputPath:       "profiles.csv",
		MetricsAddr:      "",
	}
}
