package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/club"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/platform/logging"
	"github.com/jsamuelsen11/club-records/internal/platform/telemetry"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

var _ ports.ClubService = (*ClubService)(nil)

// maxGenerationCount caps each requested count; larger clubs do not fit in a
// single chat completion.
const maxGenerationCount = 50

// ClubService implements ports.ClubService: it asks a ClubSource for a
// candidate club and validates the result as one record.
type ClubService struct {
	source    ports.ClubSource
	defaults  ports.GenerationSpec
	parseOpts []record.Option
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// NewClubService creates a ClubService. defaults fills any zero count in a
// request. metrics may be nil; a nil logger discards output.
func NewClubService(
	source ports.ClubSource,
	defaults ports.GenerationSpec,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	parseOpts ...record.Option,
) *ClubService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ClubService{
		source:    source,
		defaults:  defaults,
		parseOpts: parseOpts,
		metrics:   metrics,
		logger:    logger,
	}
}

// Generate fetches a club from the source and validates it.
func (s *ClubService) Generate(ctx context.Context, spec ports.GenerationSpec) (*club.Club, error) {
	spec = s.withDefaults(spec)
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "generating club",
		slog.Int("companies", spec.Companies),
		slog.Int("members", spec.Members),
		slog.Int("events", spec.Events),
	)

	start := time.Now()
	c, err := s.generate(ctx, spec)
	s.observe(ctx, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "club generated",
		slog.String("name", c.Name),
		slog.Int("members", len(c.Members)),
		slog.Int("events", len(c.Events)),
	)
	return &c, nil
}

func (s *ClubService) generate(ctx context.Context, spec ports.GenerationSpec) (club.Club, error) {
	raw, err := s.source.FetchClub(ctx, spec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch club",
			slog.String("operation", "Generate"),
			slog.Any("error", err),
		)
		return club.Club{}, fmt.Errorf("fetching club: %w", err)
	}

	c, err := club.Parse(raw, s.parseOpts...)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.logger.WarnContext(ctx, "generated club rejected",
				slog.String("operation", "Generate"),
				logging.Violations(verr),
			)
		}
		return club.Club{}, err
	}
	return c, nil
}

func (s *ClubService) withDefaults(spec ports.GenerationSpec) ports.GenerationSpec {
	if spec.Companies == 0 {
		spec.Companies = s.defaults.Companies
	}
	if spec.Members == 0 {
		spec.Members = s.defaults.Members
	}
	if spec.Events == 0 {
		spec.Events = s.defaults.Events
	}
	return spec
}

func validateSpec(spec ports.GenerationSpec) error {
	var violations []domain.Violation
	check := func(path string, n int) {
		if n < 0 || n > maxGenerationCount {
			violations = append(violations, domain.Violation{
				Kind:    domain.KindField,
				Path:    path,
				Rule:    "range",
				Message: fmt.Sprintf("must be between 0 and %d", maxGenerationCount),
				Value:   n,
			})
		}
	}
	check("companies", spec.Companies)
	check("members", spec.Members)
	check("events", spec.Events)

	if len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return nil
}

func (s *ClubService) observe(ctx context.Context, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	switch {
	case errors.Is(err, domain.ErrValidation):
		result = "invalid"
	case err != nil:
		result = "error"
	}
	s.metrics.ClubGenerationDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(telemetry.AttrResult.String(result)))
}
