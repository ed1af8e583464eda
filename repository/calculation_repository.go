package repository

import (
	"context"
	"errors"

	"alimony-calculator/domain"
)

var ErrNotFound = errors.New("record not found")

type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	FindByID(ctx context.Context, id string) (domain.CalculationRecord, error)
}
