package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/people"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/domain/task"
	"github.com/jsamuelsen11/club-records/internal/platform/telemetry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validMember(id int) record.Raw {
	return record.Raw{
		"name":  "Jane Doe",
		"email": fmt.Sprintf("jane%d@example.com", id),
		"id":    id,
		"company": map[string]any{
			"name":           "Acme Analytics",
			"sector":         "Technology",
			"employee_count": 40,
		},
	}
}

func invalidMember() record.Raw {
	raw := validMember(1)
	raw["email"] = "not-an-email"
	return raw
}

func validationErr(t *testing.T, err error) *domain.ValidationError {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v (%T), want *domain.ValidationError", err, err)
	}
	return verr
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return rm
}

// collectSum returns the total of an int64 counter across all data points.
func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	rm := collect(t, reader)
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s data = %T, want Sum[int64]", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func testMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return m, reader
}

// --- NewRecordService ---

func TestNewRecordService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewRecordService(nil)
	if svc.logger == nil {
		t.Fatal("NewRecordService(nil logger) should create a no-op logger, got nil")
	}
}

func TestNewRecordService_BatchLimits(t *testing.T) {
	t.Parallel()

	svc := NewRecordService(discardLogger(), WithBatchLimits(0, -1))
	if svc.workers != defaultBatchWorkers || svc.maxBatch != defaultMaxBatchSize {
		t.Errorf("limits = (%d, %d), want defaults (%d, %d)",
			svc.workers, svc.maxBatch, defaultBatchWorkers, defaultMaxBatchSize)
	}

	svc = NewRecordService(discardLogger(), WithBatchLimits(2, 10))
	if svc.workers != 2 || svc.maxBatch != 10 {
		t.Errorf("limits = (%d, %d), want (2, 10)", svc.workers, svc.maxBatch)
	}
}

// --- Kinds ---

func TestRecordService_Kinds(t *testing.T) {
	t.Parallel()

	kinds := NewRecordService(discardLogger()).Kinds()

	want := []string{
		KindClub, KindCompany, KindEmployee, KindEvent, KindFreelancer, KindIntern,
		KindMember, KindPartnerCompany, KindPerson, KindProject, KindResearcher, KindTask,
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("Kinds() = %v, want %v", kinds, want)
	}
}

// --- Validate ---

func TestRecordService_Validate(t *testing.T) {
	t.Parallel()

	t.Run("returns typed record on success", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger())

		got, err := svc.Validate(context.Background(), KindMember, validMember(7))
		if err != nil {
			t.Fatalf("Validate() error = %v, want nil", err)
		}
		m, ok := got.(people.Member)
		if !ok {
			t.Fatalf("Validate() = %T, want people.Member", got)
		}
		if m.ID != 7 {
			t.Errorf("ID = %d, want 7", m.ID)
		}
		if !m.Company.IsActive {
			t.Error("Company.IsActive = false, want default true")
		}
	})

	t.Run("returns every violation", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger())

		raw := invalidMember()
		raw["name"] = "J"
		_, err := svc.Validate(context.Background(), KindMember, raw)

		verr := validationErr(t, err)
		for _, path := range []string{"email", "name"} {
			if !verr.Has(path) {
				t.Errorf("violations %v missing path %q", verr.Paths(), path)
			}
		}
	})

	t.Run("unknown kind is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger())

		_, err := svc.Validate(context.Background(), "spaceship", record.Raw{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Validate() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Validate(ctx, KindMember, validMember(1))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Validate() error = %v, want context.Canceled", err)
		}
	})

	t.Run("parse options reach the domain", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		svc := NewRecordService(discardLogger(),
			WithParseOptions(record.WithClock(func() time.Time { return now })))

		raw := record.Raw{
			"title":       "Fix flaky login test",
			"task_type":   "bugfix",
			"assigned_to": map[string]any{"name": "John Smith", "age": 35},
			"due_date":    "2029-06-01T00:00:00Z",
			"project": map[string]any{
				"name":               "Auth",
				"client":             "Internal",
				"assigned_to":        map[string]any{"name": "John Smith", "age": 35},
				"documentation_link": "https://wiki.example.com/auth",
			},
		}
		_, err := svc.Validate(context.Background(), KindTask, raw)

		verr := validationErr(t, err)
		if !verr.HasRule(task.RuleDueDateNotPast) {
			t.Errorf("violations = %v, want %s", verr.Violations, task.RuleDueDateNotPast)
		}
	})
}

func TestRecordService_Validate_Metrics(t *testing.T) {
	t.Parallel()

	metrics, reader := testMetrics(t)
	svc := NewRecordService(discardLogger(), WithMetrics(metrics))

	raw := invalidMember()
	raw["name"] = "J"

	if _, err := svc.Validate(context.Background(), KindMember, validMember(1)); err != nil {
		t.Fatalf("Validate(valid) error = %v", err)
	}
	if _, err := svc.Validate(context.Background(), KindMember, raw); err == nil {
		t.Fatal("Validate(invalid) error = nil, want error")
	}

	if got := collectSum(t, reader, "records.validation.total"); got != 2 {
		t.Errorf("records.validation.total = %d, want 2", got)
	}
	if got := collectSum(t, reader, "records.violation.total"); got != 2 {
		t.Errorf("records.violation.total = %d, want 2", got)
	}
}

// --- ValidateBatch ---

func TestRecordService_ValidateBatch(t *testing.T) {
	t.Parallel()

	t.Run("keeps input order with independent results", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger(), WithBatchLimits(3, 100))

		items := []record.Raw{validMember(1), invalidMember(), validMember(3), invalidMember(), validMember(5)}
		got, err := svc.ValidateBatch(context.Background(), KindMember, items)
		if err != nil {
			t.Fatalf("ValidateBatch() error = %v, want nil", err)
		}
		if len(got) != len(items) {
			t.Fatalf("len(results) = %d, want %d", len(got), len(items))
		}

		for i, item := range got {
			if item.Index != i {
				t.Errorf("results[%d].Index = %d", i, item.Index)
			}
			wantValid := i%2 == 0
			if (item.Err == nil) != wantValid {
				t.Errorf("results[%d].Err = %v, want valid=%v", i, item.Err, wantValid)
			}
			if wantValid {
				if m := item.Record.(people.Member); m.ID != i+1 {
					t.Errorf("results[%d].ID = %d, want %d", i, m.ID, i+1)
				}
			} else if !errors.Is(item.Err, domain.ErrValidation) {
				t.Errorf("results[%d].Err = %v, want ErrValidation", i, item.Err)
			}
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger())

		got, err := svc.ValidateBatch(context.Background(), KindCompany, nil)
		if err != nil {
			t.Fatalf("ValidateBatch() error = %v, want nil", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("ValidateBatch() = %v, want empty non-nil", got)
		}
	})

	t.Run("oversized batch is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger(), WithBatchLimits(1, 2))

		_, err := svc.ValidateBatch(context.Background(), KindMember,
			[]record.Raw{validMember(1), validMember(2), validMember(3)})

		verr := validationErr(t, err)
		if !verr.Has("items") {
			t.Errorf("violations %v, want path items", verr.Paths())
		}
	})

	t.Run("unknown kind is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger())

		_, err := svc.ValidateBatch(context.Background(), "spaceship", []record.Raw{{}})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ValidateBatch() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("canceled context marks items", func(t *testing.T) {
		t.Parallel()
		svc := NewRecordService(discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := svc.ValidateBatch(ctx, KindMember, []record.Raw{validMember(1), validMember(2)})
		if err != nil {
			t.Fatalf("ValidateBatch() error = %v, want nil", err)
		}
		for i, item := range got {
			if !errors.Is(item.Err, context.Canceled) {
				t.Errorf("results[%d].Err = %v, want context.Canceled", i, item.Err)
			}
		}
	})
}
