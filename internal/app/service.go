// Package app wires the fetch, validation, and export stages into a single
// synchronous run. One Service.Run call is one scrape run.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/okian/scout/internal/domain/dedupe"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/validate"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Fetcher collects candidates for one role listing.
type Fetcher interface {
	FetchRole(ctx context.Context, role model.RoleType, target int) ([]model.Candidate, error)
}

// Generator produces placeholder candidates when a listing cannot be fetched.
type Generator interface {
	Generate(ctx context.Context, role model.RoleType, count int) []model.Candidate
}

// Exporter persists accepted profiles.
type Exporter interface {
	Write(p model.Profile) error
}

// Summary reports what a run did. Rejected is keyed by rejection reason.
type Summary struct {
	RunID          string
	Extracted      int
	Accepted       int
	Rejected       map[validate.Reason]int
	FetchFailures  int
	AcceptedByRole map[model.RoleType]int
	Elapsed        time.Duration
}

// Service runs the scrape pipeline: fetch each role listing, validate every
// candidate in order, and export the survivors. Candidates are processed
// one at a time so the dedup set sees them in listing order.
type Service struct {
	fetcher   Fetcher
	exporter  Exporter
	generator Generator
	seen      dedupe.SeenSet
	validator *validate.Validator

	roles         []model.RoleType
	targetPerRole int
	synthFallback bool
	synthCount    int

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRoles overrides the default role listings.
func WithRoles(roles ...model.RoleType) Option {
	return func(s *Service) {
		if len(roles) > 0 {
			s.roles = roles
		}
	}
}

// WithTargetPerRole sets how many candidates each role listing should yield.
func WithTargetPerRole(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.targetPerRole = n
		}
	}
}

// WithSynthFallback enables placeholder candidates for roles whose listing
// could not be fetched.
func WithSynthFallback(g Generator, count int) Option {
	return func(s *Service) {
		if g != nil && count > 0 {
			s.generator = g
			s.synthFallback = true
			s.synthCount = count
		}
	}
}

// WithValidatorOptions customizes the validation rules.
func WithValidatorOptions(opts ...validate.Option) Option {
	return func(s *Service) {
		s.validator = validate.New(s.seen, opts...)
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Service. The seen-email set and validator are created
// here so their lifetime matches the run.
func New(fetcher Fetcher, exporter Exporter, opts ...Option) (*Service, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}
	if exporter == nil {
		return nil, fmt.Errorf("exporter is required")
	}

	s := &Service{
		fetcher:       fetcher,
		exporter:      exporter,
		seen:          dedupe.NewInMemorySeenSet(),
		roles:         model.Roles(),
		targetPerRole: 50,
	}
	s.validator = validate.New(s.seen)

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get().Named("app")
	}

	return s, nil
}

// Run executes one scrape run across all configured roles. A role whose
// listing cannot be fetched is skipped (or backfilled with placeholder
// candidates when synth fallback is on); the run itself keeps going.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	sum := Summary{
		RunID:          uuid.New().String(),
		Rejected:       make(map[validate.Reason]int),
		AcceptedByRole: make(map[model.RoleType]int),
	}

	s.log.Info(ctx, "starting run",
		logger.String("runID", sum.RunID),
		logger.Int("roles", len(s.roles)),
		logger.Int("targetPerRole", s.targetPerRole))

	for _, role := range s.roles {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		cands, err := s.fetcher.FetchRole(ctx, role, s.targetPerRole)
		if err != nil {
			sum.FetchFailures++
			s.log.Warn(ctx, "role listing fetch failed",
				logger.String("role", string(role)),
				logger.Int("partial", len(cands)),
				logger.Error(err))
			if s.synthFallback {
				cands = append(cands, s.generator.Generate(ctx, role, s.synthCount)...)
			}
		}

		sum.Extracted += len(cands)
		metrics.AddCandidatesExtracted(len(cands))

		for _, c := range cands {
			profile, verr := s.validator.Validate(ctx, c)
			if verr != nil {
				reason, ok := validate.ReasonOf(verr)
				if !ok {
					return sum, fmt.Errorf("validate candidate: %w", verr)
				}
				sum.Rejected[reason]++
				metrics.RecordProfileRejected(string(reason))
				s.log.Debug(ctx, "candidate rejected",
					logger.String("reason", string(reason)),
					logger.String("email", c.Email))
				continue
			}

			if err := s.exporter.Write(profile); err != nil {
				return sum, fmt.Errorf("export profile: %w", err)
			}
			sum.Accepted++
			sum.AcceptedByRole[role]++
			metrics.RecordProfileAccepted()
		}
	}

	sum.Elapsed = time.Since(start)
	metrics.UpdateDedupeSize(s.seen.Size())
	metrics.ObserveRunDuration(sum.Elapsed)

	s.log.Info(ctx, "run finished",
		logger.String("runID", sum.RunID),
		logger.Int("extracted", sum.Extracted),
		logger.Int("accepted", sum.Accepted),
		logger.Int("fetchFailures", sum.FetchFailures),
		logger.Duration("elapsed", sum.Elapsed))

	return sum, nil
}

// SeenCount returns the number of distinct accepted emails so far.
func (s *Service) SeenCount() int64 {
	return s.seen.Size()
}
