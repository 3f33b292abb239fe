// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/club-records/internal/app/fanout"
	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/club"
	"github.com/jsamuelsen11/club-records/internal/domain/company"
	"github.com/jsamuelsen11/club-records/internal/domain/event"
	"github.com/jsamuelsen11/club-records/internal/domain/people"
	"github.com/jsamuelsen11/club-records/internal/domain/project"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/domain/staff"
	"github.com/jsamuelsen11/club-records/internal/domain/task"
	"github.com/jsamuelsen11/club-records/internal/platform/logging"
	"github.com/jsamuelsen11/club-records/internal/platform/telemetry"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

var _ ports.RecordService = (*RecordService)(nil)

// Record kinds served by the catalog.
const (
	KindCompany        = "company"
	KindPartnerCompany = "partner_company"
	KindPerson         = "person"
	KindMember         = "member"
	KindFreelancer     = "freelancer"
	KindResearcher     = "researcher"
	KindEvent          = "event"
	KindClub           = "club"
	KindEmployee       = "employee"
	KindIntern         = "intern"
	KindProject        = "project"
	KindTask           = "task"
)

const (
	defaultBatchWorkers = 8
	defaultMaxBatchSize = 500
)

type parseFunc func(record.Raw, ...record.Option) (any, error)

// adapt erases a typed Parse function so it can live in the catalog.
func adapt[T any](parse func(record.Raw, ...record.Option) (T, error)) parseFunc {
	return func(raw record.Raw, opts ...record.Option) (any, error) {
		v, err := parse(raw, opts...)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func defaultCatalog() map[string]parseFunc {
	return map[string]parseFunc{
		KindCompany:        adapt(company.Parse),
		KindPartnerCompany: adapt(company.ParsePartner),
		KindPerson:         adapt(people.ParsePerson),
		KindMember:         adapt(people.ParseMember),
		KindFreelancer:     adapt(people.ParseFreelancer),
		KindResearcher:     adapt(people.ParseResearcher),
		KindEvent:          adapt(event.Parse),
		KindClub:           adapt(club.Parse),
		KindEmployee:       adapt(staff.ParseEmployee),
		KindIntern:         adapt(staff.ParseIntern),
		KindProject:        adapt(project.Parse),
		KindTask:           adapt(task.Parse),
	}
}

// RecordService implements ports.RecordService over the fixed record catalog.
// It adds logging, metrics and bounded batch concurrency; all validation
// semantics live in the domain packages.
type RecordService struct {
	catalog   map[string]parseFunc
	parseOpts []record.Option
	workers   int
	maxBatch  int
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// RecordServiceOption configures a RecordService.
type RecordServiceOption func(*RecordService)

// WithBatchLimits sets the worker pool size and the largest accepted batch.
// Non-positive values keep the defaults.
func WithBatchLimits(workers, maxBatch int) RecordServiceOption {
	return func(s *RecordService) {
		if workers > 0 {
			s.workers = workers
		}
		if maxBatch > 0 {
			s.maxBatch = maxBatch
		}
	}
}

// WithMetrics records validation counters on m.
func WithMetrics(m *telemetry.Metrics) RecordServiceOption {
	return func(s *RecordService) { s.metrics = m }
}

// WithParseOptions passes opts to every record construction, e.g. a fixed
// clock for date rules.
func WithParseOptions(opts ...record.Option) RecordServiceOption {
	return func(s *RecordService) { s.parseOpts = append(s.parseOpts, opts...) }
}

// NewRecordService creates a RecordService. A nil logger discards output.
func NewRecordService(logger *slog.Logger, opts ...RecordServiceOption) *RecordService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &RecordService{
		catalog:  defaultCatalog(),
		workers:  defaultBatchWorkers,
		maxBatch: defaultMaxBatchSize,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kinds returns the catalog's kind names in sorted order.
func (s *RecordService) Kinds() []string {
	return slices.Sorted(maps.Keys(s.catalog))
}

// Validate constructs a single record of the named kind.
func (s *RecordService) Validate(ctx context.Context, kind string, raw record.Raw) (any, error) {
	parse, err := s.lookup(kind)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec, err := s.construct(ctx, kind, parse, raw)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "record validated", slog.String("kind", kind))
	return rec, nil
}

// ValidateBatch validates items concurrently, one independent result per item.
func (s *RecordService) ValidateBatch(ctx context.Context, kind string, items []record.Raw) ([]ports.BatchItem, error) {
	parse, err := s.lookup(kind)
	if err != nil {
		return nil, err
	}
	if len(items) > s.maxBatch {
		return nil, &domain.ValidationError{Violations: []domain.Violation{{
			Kind:    domain.KindField,
			Path:    "items",
			Rule:    "max",
			Message: fmt.Sprintf("must contain at most %d items", s.maxBatch),
			Value:   len(items),
		}}}
	}

	s.logger.InfoContext(ctx, "validating batch",
		slog.String("kind", kind),
		slog.Int("size", len(items)),
	)

	results := fanout.Run(ctx, s.workers, items, func(ctx context.Context, raw record.Raw) (any, error) {
		return s.construct(ctx, kind, parse, raw)
	})

	out := make([]ports.BatchItem, len(results))
	invalid := 0
	for i, r := range results {
		out[i] = ports.BatchItem{Index: r.Index, Record: r.Value, Err: r.Err}
		if r.Err != nil {
			invalid++
		}
	}

	s.logger.InfoContext(ctx, "batch validated",
		slog.String("kind", kind),
		slog.Int("valid", len(out)-invalid),
		slog.Int("invalid", invalid),
	)
	return out, nil
}

func (s *RecordService) lookup(kind string) (parseFunc, error) {
	parse, ok := s.catalog[kind]
	if !ok {
		return nil, fmt.Errorf("record kind %q: %w", kind, domain.ErrNotFound)
	}
	return parse, nil
}

func (s *RecordService) construct(ctx context.Context, kind string, parse parseFunc, raw record.Raw) (any, error) {
	rec, err := parse(raw, s.parseOpts...)
	s.observe(ctx, kind, err)
	if err == nil {
		return rec, nil
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		s.logger.DebugContext(ctx, "record rejected",
			slog.String("operation", "Validate"),
			slog.String("kind", kind),
			logging.Violations(verr),
		)
		return nil, err
	}

	s.logger.ErrorContext(ctx, "record construction failed",
		slog.String("operation", "Validate"),
		slog.String("kind", kind),
		slog.Any("error", err),
	)
	return nil, err
}

func (s *RecordService) observe(ctx context.Context, kind string, err error) {
	if s.metrics == nil {
		return
	}

	result := "valid"
	if err != nil {
		result = "invalid"
	}
	s.metrics.RecordValidationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrRecordKind.String(kind),
		telemetry.AttrResult.String(result),
	))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, v := range verr.Violations {
		s.metrics.RecordViolationTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrRecordKind.String(kind),
			telemetry.AttrRule.String(v.Rule),
			attribute.String("violation.kind", string(v.Kind)),
		))
	}
}
