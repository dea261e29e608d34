package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/slabworks/concrete-planner/internal/store/model"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Project() Project
	Estimate() Estimate
	Statistics(ctx context.Context, orgID string) (model.EstimateStats, error)
	InitialMigration() error
	Close() error
}

type DataStore struct {
	db       *gorm.DB
	project  Project
	estimate Estimate
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:       db,
		project:  NewProjectStore(db),
		estimate: NewEstimateStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Project() Project {
	return s.project
}

func (s *DataStore) Estimate() Estimate {
	return s.estimate
}

func (s *DataStore) Statistics(ctx context.Context, orgID string) (model.EstimateStats, error) {
	var stats model.EstimateStats

	if err := getDB(ctx, s.db).Model(&model.Project{}).
		Where("org_id = ?", orgID).
		Count(&stats.Projects).Error; err != nil {
		return model.EstimateStats{}, err
	}

	type totals struct {
		Count     int64
		VolumeM3  float64
		TotalCost float64
	}
	var t totals
	if err := getDB(ctx, s.db).Model(&model.Estimate{}).
		Select("COUNT(*) AS count, COALESCE(SUM(volume_m3), 0) AS volume_m3, COALESCE(SUM(total_cost), 0) AS total_cost").
		Where("org_id = ?", orgID).
		Scan(&t).Error; err != nil {
		return model.EstimateStats{}, err
	}

	stats.Estimates = t.Count
	stats.TotalVolumeM3 = t.VolumeM3
	stats.TotalEstimatedCost = t.TotalCost

	if err := getDB(ctx, s.db).Model(&model.Estimate{}).
		Select("mix_class, COUNT(*) AS estimates").
		Where("org_id = ?", orgID).
		Group("mix_class").
		Order("estimates DESC, mix_class ASC").
		Scan(&stats.UsageByClass).Error; err != nil {
		return model.EstimateStats{}, err
	}
	return stats, nil
}

func (s *DataStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Project{}, &model.Estimate{})
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
