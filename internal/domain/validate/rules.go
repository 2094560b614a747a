package validate

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// emailPattern is a pragmatic RFC-5322-oriented check. Quoted local parts
// and IP-literal domains are deliberately out of scope; see the test suite
// for the exact acceptance boundary.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Default heuristic lookup data. These are editable marker lists, not
// algorithmic logic; runs can replace them through options/configuration.
var (
	defaultPlaceholderMarkers = []string{
		"test", "example", "sample", "demo", "placeholder",
	}

	defaultPlaceholderDomains = []string{
		"example.com", "example.net", "example.org", "example.edu",
		"test.com", "invalid.test",
	}

	defaultBrandTokens = []string{
		"studio", "media", "agency", "productions", "designs",
		"labs", "official", "channel", "team", "llc", "inc",
		"ltd", "pvt", "gmbh", "plc", "company", "group",
		"collective", "enterprise", "corporation",
	}
)

// splitEmail breaks a normalized address into local part and domain.
func splitEmail(email string) (local, domain string) {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email, ""
	}
	return email[:at], email[at+1:]
}

// isPlaceholder reports whether a normalized email looks like seeded or
// synthetic data: a reserved domain, or a marker token appearing in the
// local part or domain.
func (v *Validator) isPlaceholder(email string) bool {
	local, domain := splitEmail(email)

	if _, ok := v.placeholderDomains[domain]; ok {
		return true
	}
	for _, marker := range v.placeholderMarkers {
		if strings.Contains(local, marker) || strings.Contains(domain, marker) {
			return true
		}
	}
	return false
}

// isBrandName reports whether a display name looks like an organization
// rather than an individual. Heuristic by nature; false positives and
// negatives are expected and acceptable.
func (v *Validator) isBrandName(name string) bool {
	for _, word := range strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		if _, ok := v.brandTokens[word]; ok {
			return true
		}
	}

	// "The Something" is a common brand naming pattern.
	if rest, ok := strings.CutPrefix(name, "The "); ok {
		for _, r := range rest {
			return unicode.IsUpper(r)
		}
	}
	return false
}

// validProfileLink reports whether raw is a well-formed absolute URL on the
// expected host whose path starts with the profile prefix and carries a
// non-empty slug.
func (v *Validator) validProfileLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host != v.profileHost && !strings.HasSuffix(host, "."+v.profileHost) {
		return false
	}

	if !strings.HasPrefix(u.Path, v.profilePathPrefix) {
		return false
	}
	slug := strings.Trim(strings.TrimPrefix(u.Path, v.profilePathPrefix), "/")
	return slug != ""
}
