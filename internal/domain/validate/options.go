package validate

import "strings"

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithPlaceholderMarkers replaces the marker tokens matched against email
// local parts and domains in the placeholder stage.
func WithPlaceholderMarkers(markers []string) Option {
	return func(v *Validator) {
		if len(markers) > 0 {
			lowered := make([]string, 0, len(markers))
			for _, m := range markers {
				if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
					lowered = append(lowered, m)
				}
			}
			v.placeholderMarkers = lowered
		}
	}
}

// WithPlaceholderDomains replaces the reserved domains rejected outright in
// the placeholder stage.
func WithPlaceholderDomains(domains []string) Option {
	return func(v *Validator) {
		if len(domains) > 0 {
			v.placeholderDomains = tokenSet(domains)
		}
	}
}

// WithBrandTokens replaces the organization tokens matched word-by-word
// against candidate names in the brand stage.
func WithBrandTokens(tokens []string) Option {
	return func(v *Validator) {
		if len(tokens) > 0 {
			v.brandTokens = tokenSet(tokens)
		}
	}
}

// WithProfileHost sets the host profile links must live on. Subdomains of
// the host are accepted as well.
func WithProfileHost(host string) Option {
	return func(v *Validator) {
		if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
			v.profileHost = strings.TrimPrefix(host, "www.")
		}
	}
}

// WithProfilePathPrefix sets the required path prefix for profile links.
func WithProfilePathPrefix(prefix string) Option {
	return func(v *Validator) {
		if prefix != "" {
			v.profilePathPrefix = prefix
		}
	}
}
