package statement

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"holerite/internal/calendar"
	"holerite/internal/events"
	"holerite/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const resultKeyPrefix = "statements:result:"

//go:generate mockgen -source=statement_service.go -destination=mock/statement_service_mock.go -package=mock
type Service interface {
	Compute(ctx context.Context, req ComputeStatementRequest) (StatementResponse, error)
	TaxTables() TaxTablesResponse
}

// EventPublisher receives the audit event for each computation. Publish must
// not block.
type EventPublisher interface {
	Publish(event events.StatementComputedEvent)
}

type service struct {
	builder   *Builder
	rdb       *redis.Client
	publisher EventPublisher
	sf        *singleflight.Group
	cacheTTL  time.Duration
}

// NewService builds the statement service. rdb and publisher may be nil; the
// service then computes without memoization or audit events.
func NewService(builder *Builder, rdb *redis.Client, publisher EventPublisher) Service {
	return &service{
		builder:   builder,
		rdb:       rdb,
		publisher: publisher,
		sf:        &singleflight.Group{},
		cacheTTL:  24 * time.Hour,
	}
}

func (s *service) Compute(ctx context.Context, req ComputeStatementRequest) (StatementResponse, error) {
	inputs, err := s.resolveInputs(req)
	if err != nil {
		return StatementResponse{}, err
	}

	key, err := resultKey(inputs)
	if err != nil {
		return StatementResponse{}, err
	}

	if s.rdb != nil {
		if val, getErr := s.rdb.Get(ctx, key).Result(); getErr == nil {
			var cached StatementResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				s.emit(ctx, req.Period, cached, true)
				return cached, nil
			}
		}
	}

	// Identical concurrent requests share one computation and one cache write.
	v, err, _ := s.sf.Do(key, func() (any, error) {
		resp := mapToResponse(s.builder.Build(inputs), inputs)

		if s.rdb != nil {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				// Cache failures are non-fatal; the result is already computed.
				_ = s.rdb.Set(ctx, key, payload, s.cacheTTL).Err()
			}
		}

		return resp, nil
	})
	if err != nil {
		return StatementResponse{}, err
	}

	resp := v.(StatementResponse)
	s.emit(ctx, req.Period, resp, false)

	return resp, nil
}

func (s *service) TaxTables() TaxTablesResponse {
	cfg := s.builder.Config()
	return TaxTablesResponse{
		SocialSecurity:     mapTableToResponse(cfg.SocialSecurity),
		IncomeTax:          mapTableToResponse(cfg.IncomeTax),
		DependentDeduction: cfg.DependentDeduction,
		StandardDivisor:    DefaultHoursDivisor,
		FGTSRatePercent:    round2(FGTSRate * 100),
	}
}

// resolveInputs turns the request into builder inputs. When a period is
// given, day counts come from the calendar; a manual rest-day override
// re-derives working days from the month total so the two counts can never
// drift apart.
func (s *service) resolveInputs(req ComputeStatementRequest) (Inputs, error) {
	restDays, workingDays := 0, 0

	if req.Period != "" {
		facts, err := calendar.CountMonthFacts(req.Period)
		if err != nil {
			return Inputs{}, err
		}

		restDays = facts.RestDays
		if req.RestDays != nil {
			restDays = *req.RestDays
		}
		workingDays = facts.TotalDays - restDays
		if workingDays < 0 {
			workingDays = 0
		}
	} else {
		if req.RestDays != nil {
			restDays = *req.RestDays
		}
		if req.WorkingDays != nil {
			workingDays = *req.WorkingDays
		}
	}

	return Inputs{
		BaseSalary:   req.BaseSalary,
		HoursDivisor: req.HoursDivisor,
		RestDays:     restDays,
		WorkingDays:  workingDays,
		Dependents:   req.Dependents,

		NightShiftHours:      req.NightShiftHours,
		Overtime50Hours:      req.Overtime50Hours,
		NightOvertime70Hours: req.NightOvertime70Hours,
		HolidayWorkedHours:   req.HolidayWorkedHours,

		AdvanceDiscount:     req.AdvanceDiscount,
		HealthPlanDiscount:  req.HealthPlanDiscount,
		DentalPlanDiscount:  req.DentalPlanDiscount,
		MealVoucherDiscount: req.MealVoucherDiscount,
		OtherDiscounts:      req.OtherDiscounts,
	}, nil
}

func (s *service) emit(ctx context.Context, period string, resp StatementResponse, cacheHit bool) {
	if s.publisher == nil {
		return
	}

	s.publisher.Publish(events.StatementComputedEvent{
		EventType:   "statement_computed",
		RequestID:   contextutil.GetRequestID(ctx),
		Period:      period,
		GrossTotal:  resp.TotalEarnings,
		NetPay:      resp.NetPay,
		FGTSDeposit: resp.FGTSDeposit,
		CacheHit:    cacheHit,
		OccurredAt:  time.Now().UTC(),
	})
}

// resultKey is a stable digest of the resolved inputs, so identical inputs
// always hit the same cache entry.
func resultKey(inputs Inputs) (string, error) {
	payload, err := json.Marshal(inputs)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return resultKeyPrefix + hex.EncodeToString(sum[:]), nil
}
