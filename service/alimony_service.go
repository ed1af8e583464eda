package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alimony-calculator/domain"
	"alimony-calculator/metrics"
	"alimony-calculator/repository"
)

type AlimonyService struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewAlimonyService creates a new AlimonyService with the given repository
// and result cache.
func NewAlimonyService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *AlimonyService {
	return &AlimonyService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Calculate validates a raw request body and computes the alimony estimate.
// Validation failures are returned as ErrMissingFields or *InvalidInputError.
func (s *AlimonyService) Calculate(
	ctx context.Context,
	raw map[string]any,
) (domain.CalculationRecord, error) {

	input, err := Validate(raw)
	if err != nil {
		s.recordFailure(err)
		return domain.CalculationRecord{}, err
	}

	result := s.cachedCalculate(ctx, input)

	record := domain.CalculationRecord{
		ID:        uuid.NewString(),
		Input:     input,
		Result:    result,
		CreatedAt: s.now().UTC(),
	}

	// History is best effort; the caller still gets the result.
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Warn("failed to save calculation",
			zap.String("id", record.ID),
			zap.Error(err),
		)
	}

	metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.CalculatedPercentage.Observe(float64(result.Percentage))

	s.logger.Debug("alimony calculated",
		zap.String("id", record.ID),
		zap.Int64("alimony", result.Alimony),
		zap.Int("percentage", result.Percentage),
	)

	return record, nil
}

// Get returns a previously stored calculation.
func (s *AlimonyService) Get(ctx context.Context, id string) (domain.CalculationRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.CalculationRecord{}, ErrCalculationNotFound
	}
	if err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("find calculation %s: %w", id, err)
	}
	return record, nil
}

func (s *AlimonyService) cachedCalculate(
	ctx context.Context,
	input domain.CalculationInput,
) domain.CalculationResult {
	key := CacheKey(input)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.CalculationResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return result
		}
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	result := Calculate(input)

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode result for cache", zap.Error(err))
		return result
	}
	if err := s.cache.Set(ctx, key, string(payload)); err != nil {
		s.logger.Warn("failed to cache result",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	return result
}

func (s *AlimonyService) recordFailure(err error) {
	var invalid *InvalidInputError
	switch {
	case errors.Is(err, ErrMissingFields):
		metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeMissingFields).Inc()
	case errors.As(err, &invalid):
		metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
	default:
		metrics.CalculationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
	}
}

// CacheKey is a canonical string for input, in field validation order.
func CacheKey(input domain.CalculationInput) string {
	parts := []string{
		formatNumber(input.HusbandIncome),
		strconv.Itoa(input.NumberOfChildren),
		formatNumber(input.PropertyValue),
		formatNumber(input.LandValue),
		formatNumber(input.MarriageDuration),
		formatNumber(input.WomanIncome),
	}
	return strings.Join(parts, "|")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
