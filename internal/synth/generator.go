// Package synth generates placeholder candidates for runs where a role
// listing could not be fetched. Every generated record fails validation by
// construction: shapes cycle through malformed emails, reserved domains,
// brand names, and broken profile links, so synthetic data gives each of
// those stages traffic without ever reaching the output dataset.
package synth

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
)

var firstNames = []string{"Alex", "Jordan", "Sam", "Riley", "Casey", "Morgan", "Drew", "Quinn"}
var lastNames = []string{"Taylor", "Reed", "Hayes", "Brooks", "Dale", "Monroe", "Ellis", "Frost"}
var brandNames = []string{"Acme Studio", "Northside Media", "The Collective", "Pixel Labs", "Bright Agency"}

// Generator produces synthetic candidates for a role.
type Generator struct {
	baseURL string
	rng     *rand.Rand
	log     logger.Logger
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic for tests.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBaseURL overrides the site base used for profile links.
func WithBaseURL(base string) Option {
	return func(g *Generator) {
		if base != "" {
			g.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithLogger overrides the generator logger.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator. Without WithSeed the sequence varies per run.
func New(opts ...Option) *Generator {
	g := &Generator{
		baseURL: "https://www.twine.net",
		rng:     rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Get().Named("synth")
	}
	return g
}

// Generate returns count candidates for role, cycling through the shapes so
// a batch spreads rejections across the validation stages.
func (g *Generator) Generate(ctx context.Context, role model.RoleType, count int) []model.Candidate {
	g.log.Info(ctx, "generating synthetic candidates",
		logger.String("role", string(role)),
		logger.Int("count", count))

	out := make([]model.Candidate, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.candidate(role, i%shapeCount))
	}
	return out
}

func (g *Generator) candidate(role model.RoleType, shape int) model.Candidate {
	slug := strings.ReplaceAll(uuid.New().String(), "-", "")[:slugLength]
	name := g.pick(firstNames) + " " + g.pick(lastNames)
	email := fmt.Sprintf("%s.contact@%s", slug, unroutableDomain)
	link := g.baseURL + "/profile/" + slug

	switch shape {
	case caseMalformedEmail:
		email = slug + "." + unroutableDomain
	case caseReservedDomain:
		email = slug + ".contact@" + g.pick(reservedDomains)
	case caseMarkerLocal:
		email = "test." + slug + "@" + g.pick(reservedDomains)
	case caseBrandName:
		name = g.pick(brandNames)
	case caseBadProfileLink:
		link = "/profile/" + slug
	}

	return model.Candidate{
		Name:        name,
		Email:       email,
		ProfileLink: link,
		Role:        role,
	}
}

func (g *Generator) pick(vals []string) string {
	return vals[g.rng.Intn(len(vals))]
}
