package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/slabworks/concrete-planner/internal/store/model"
)

type Estimate interface {
	List(ctx context.Context, filter *EstimateQueryFilter, options *EstimateQueryOptions) (model.EstimateList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Estimate, error)
	Create(ctx context.Context, estimate model.Estimate) (*model.Estimate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EstimateStore struct {
	db *gorm.DB
}

// Make sure we conform to Estimate interface
var _ Estimate = (*EstimateStore)(nil)

func NewEstimateStore(db *gorm.DB) Estimate {
	return &EstimateStore{db: db}
}

func (e *EstimateStore) List(ctx context.Context, filter *EstimateQueryFilter, options *EstimateQueryOptions) (model.EstimateList, error) {
	var estimates model.EstimateList
	tx := getDB(ctx, e.db).Model(&estimates).Order("created_at DESC")

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}
	if options != nil {
		for _, fn := range options.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Find(&estimates); result.Error != nil {
		return nil, result.Error
	}
	return estimates, nil
}

func (e *EstimateStore) Get(ctx context.Context, id uuid.UUID) (*model.Estimate, error) {
	var estimate model.Estimate
	result := getDB(ctx, e.db).First(&estimate, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &estimate, nil
}

func (e *EstimateStore) Create(ctx context.Context, estimate model.Estimate) (*model.Estimate, error) {
	result := getDB(ctx, e.db).Clauses(clause.Returning{}).Create(&estimate)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &estimate, nil
}

func (e *EstimateStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := getDB(ctx, e.db).Unscoped().Delete(&model.Estimate{}, "id = ?", id.String())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}
