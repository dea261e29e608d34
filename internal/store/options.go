package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type ProjectQueryFilter BaseQuerier

func NewProjectQueryFilter() *ProjectQueryFilter {
	return &ProjectQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *ProjectQueryFilter) ByOrgID(orgID string) *ProjectQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("org_id = ?", orgID)
	})
	return f
}

func (f *ProjectQueryFilter) ByNameLike(pattern string) *ProjectQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("name LIKE ?", "%"+pattern+"%")
	})
	return f
}

type EstimateQueryFilter BaseQuerier

func NewEstimateQueryFilter() *EstimateQueryFilter {
	return &EstimateQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *EstimateQueryFilter) ByOrgID(orgID string) *EstimateQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("org_id = ?", orgID)
	})
	return f
}

func (f *EstimateQueryFilter) ByProjectID(projectID uuid.UUID) *EstimateQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("project_id = ?", projectID)
	})
	return f
}

type EstimateQueryOptions BaseQuerier

func NewEstimateQueryOptions() *EstimateQueryOptions {
	return &EstimateQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *EstimateQueryOptions) WithLimit(limit int) *EstimateQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *EstimateQueryOptions) WithOffset(offset int) *EstimateQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}
