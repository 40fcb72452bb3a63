package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/advisor"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/audit"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
	"go.uber.org/zap"
)

// Advice is one computed result together with the metrics it was computed from
type Advice struct {
	ID      string
	Metrics model.HealthMetrics
	Result  model.AdviceResult
}

// AdviceService validates raw input and runs the advice engine
type AdviceService struct {
	audit  *audit.Logger
	logger *zap.Logger
}

// NewAdviceService creates a new AdviceService
func NewAdviceService(auditLogger *audit.Logger, logger *zap.Logger) *AdviceService {
	return &AdviceService{
		audit:  auditLogger,
		logger: logger,
	}
}

// Advise validates raw metrics and computes BMI, energy needs and plans.
// Validation failures wrap advisor.ErrInvalidInput or advisor.ErrUnknownEnumValue.
func (s *AdviceService) Advise(ctx context.Context, raw model.RawMetrics) (*Advice, error) {
	advice, err := s.advise(raw)
	if err != nil {
		s.audit.LogReject(ctx, audit.ResourceAdvice, rejectReason(err))
		return nil, err
	}

	s.audit.LogCompute(ctx, advice.ID, advice.Result.BMI.Category.String())
	return advice, nil
}

func (s *AdviceService) advise(raw model.RawMetrics) (*Advice, error) {
	metrics, err := advisor.Validate(raw)
	if err != nil {
		s.logger.Warn("health metrics rejected", zap.String("reason", rejectReason(err)))
		return nil, fmt.Errorf("invalid health metrics: %w", err)
	}

	result, err := advisor.ComputeAdvice(metrics)
	if err != nil {
		s.logger.Error("failed to compute advice", zap.Error(err))
		return nil, fmt.Errorf("failed to compute advice: %w", err)
	}

	advice := &Advice{
		ID:      uuid.New().String(),
		Metrics: metrics,
		Result:  result,
	}

	s.logger.Info("advice computed successfully",
		zap.String("advice_id", advice.ID),
		zap.String("category", result.BMI.Category.String()),
		zap.Int("calorie_needs", result.CalorieNeeds),
	)

	return advice, nil
}

// Options returns the accepted input values for building a form
func (s *AdviceService) Options() advisor.Catalogue {
	return advisor.Options()
}

// rejectReason classifies a validation failure for the audit trail without
// repeating the rejected values.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, advisor.ErrUnknownEnumValue):
		return "unknown_enum_value"
	case errors.Is(err, advisor.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal_error"
	}
}
