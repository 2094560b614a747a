// Package extract parses rendered listing pages into candidate records.
//
// Extraction is structural and deliberately tolerant: a fragment missing a
// name or email yields a candidate with empty strings, never an error. The
// validation pipeline owns the accept/reject decision.
package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/scout/internal/domain/model"
)

// profileAnchor matches anchors pointing at profile pages; cardContainer is
// the closest enclosing fragment a profile anchor is read in context of.
const (
	profileAnchor = `a[href*="/profile/"]`
	cardContainer = `div[class*="card"], li, article`
	nameSelector  = `h1, h2, h3, [class*="name"]`
	mailtoAnchor  = `a[href^="mailto:"]`
)

// emailText finds email-shaped strings in free text.
var emailText = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Extractor turns listing-page HTML into candidates. One extractor is
// shared across all pages of a run.
type Extractor struct {
	base *url.URL
}

// New creates an Extractor that resolves relative profile links against
// baseURL.
func New(baseURL string) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	return &Extractor{base: base}, nil
}

// Candidates parses one rendered listing page. The role is stamped from the
// listing being paginated, never inferred from page content. Duplicate
// profile links within a page are collapsed; duplicate people across pages
// are the validator's concern.
func (e *Extractor) Candidates(html string, role model.RoleType) ([]model.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	var out []model.Candidate
	seenLinks := make(map[string]struct{})

	doc.Find(profileAnchor).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		link := e.absolute(href)
		if link == "" {
			return
		}
		if _, dup := seenLinks[link]; dup {
			return
		}
		seenLinks[link] = struct{}{}

		card := a.Closest(cardContainer)
		if card.Length() == 0 {
			card = a
		}

		out = append(out, model.Candidate{
			Name:        extractName(a, card),
			Email:       extractEmail(card),
			ProfileLink: link,
			Role:        role,
		})
	})

	return out, nil
}

// absolute resolves href against the base URL and drops fragments. Returns
// "" for unparseable hrefs.
func (e *Extractor) absolute(href string) string {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := e.base.ResolveReference(u)
	resolved.Fragment = ""
	return resolved.String()
}

// extractName tries heading-like elements in the card first, then falls back
// to the anchor's own text.
func extractName(a, card *goquery.Selection) string {
	if name := collapse(card.Find(nameSelector).First().Text()); name != "" {
		return name
	}
	return collapse(a.Text())
}

// extractEmail prefers an explicit mailto link and falls back to scanning the
// card's visible text.
func extractEmail(card *goquery.Selection) string {
	if href, ok := card.Find(mailtoAnchor).First().Attr("href"); ok {
		addr := strings.TrimPrefix(href, "mailto:")
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		return strings.TrimSpace(addr)
	}
	return emailText.FindString(card.Text())
}

// collapse trims and squeezes runs of whitespace into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
