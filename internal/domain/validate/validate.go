package validate

import (
	"context"
	"strings"

	"github.com/okian/scout/internal/domain/dedupe"
	"github.com/okian/scout/internal/domain/model"
)

// Validator applies the five-stage quality pipeline to candidate records.
// Stage order is fixed and evaluation short-circuits: the first failing
// stage determines the reported reason, and the seen-email set is only
// touched once every prior stage has passed.
type Validator struct {
	seen dedupe.SeenSet

	placeholderMarkers []string
	placeholderDomains map[string]struct{}
	brandTokens        map[string]struct{}
	profileHost        string
	profilePathPrefix  string
}

// New creates a Validator around a run-scoped seen-email set. The set is
// owned by the caller so a run can inspect its size after the pipeline
// finishes.
func New(seen dedupe.SeenSet, opts ...Option) *Validator {
	v := &Validator{
		seen:               seen,
		placeholderMarkers: defaultPlaceholderMarkers,
		brandTokens:        tokenSet(defaultBrandTokens),
		placeholderDomains: tokenSet(defaultPlaceholderDomains),
		profileHost:        "twine.net",
		profilePathPrefix:  "/profile/",
	}

	// Apply all options
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Validate promotes a candidate to an accepted profile or rejects it with
// the reason of the first failing stage. Rejections are per-record: the
// caller counts them and moves on to the next candidate.
func (v *Validator) Validate(ctx context.Context, c model.Candidate) (model.Profile, error) {
	// Stage 1: email format. Normalize before everything else so every
	// later stage (and the dedup set) sees the canonical form.
	email := strings.ToLower(strings.TrimSpace(c.Email))
	if email == "" || !emailPattern.MatchString(email) {
		return model.Profile{}, &Rejection{Reason: ReasonInvalidEmail, Detail: c.Email}
	}

	// Stage 2: test/placeholder detection.
	if v.isPlaceholder(email) {
		return model.Profile{}, &Rejection{Reason: ReasonPlaceholderData, Detail: email}
	}

	// Stage 3: brand/organization filtering.
	name := strings.TrimSpace(c.Name)
	if len(name) < 2 || v.isBrandName(name) {
		return model.Profile{}, &Rejection{Reason: ReasonNotAnIndividual, Detail: c.Name}
	}

	// Stage 4: profile URL shape.
	if !v.validProfileLink(c.ProfileLink) {
		return model.Profile{}, &Rejection{Reason: ReasonInvalidProfileURL, Detail: c.ProfileLink}
	}

	// Stage 5: duplicate detection. Must stay last: a candidate rejected
	// above must never pollute the seen set.
	if v.seen.SeenAndRecord(ctx, email) {
		return model.Profile{}, &Rejection{Reason: ReasonDuplicateEmail, Detail: email}
	}

	return model.Profile{
		Name:        name,
		Email:       email,
		ProfileLink: c.ProfileLink,
		Role:        c.Role,
	}, nil
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return set
}
