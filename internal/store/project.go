package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/slabworks/concrete-planner/internal/store/model"
)

type Project interface {
	List(ctx context.Context, filter *ProjectQueryFilter) (model.ProjectList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, project model.Project) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, name *string, location *string) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountEstimates(ctx context.Context, id uuid.UUID) (int64, error)
}

type ProjectStore struct {
	db *gorm.DB
}

// Make sure we conform to Project interface
var _ Project = (*ProjectStore)(nil)

func NewProjectStore(db *gorm.DB) Project {
	return &ProjectStore{db: db}
}

func (p *ProjectStore) List(ctx context.Context, filter *ProjectQueryFilter) (model.ProjectList, error) {
	var projects model.ProjectList
	tx := getDB(ctx, p.db).Model(&projects).Order("created_at DESC")

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Find(&projects); result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (p *ProjectStore) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	result := getDB(ctx, p.db).First(&project, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &project, nil
}

func (p *ProjectStore) Create(ctx context.Context, project model.Project) (*model.Project, error) {
	result := getDB(ctx, p.db).Clauses(clause.Returning{}).Create(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &project, nil
}

func (p *ProjectStore) Update(ctx context.Context, id uuid.UUID, name *string, location *string) (*model.Project, error) {
	var project model.Project
	if err := getDB(ctx, p.db).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if name != nil {
		project.Name = *name
	}
	if location != nil {
		project.Location = *location
	}

	now := time.Now()
	project.UpdatedAt = &now
	// Select forces the write even when a field is cleared to its zero value;
	// a struct Updates alone would skip an empty location.
	if err := getDB(ctx, p.db).Model(&project).
		Select("name", "location", "updated_at").
		Updates(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &project, nil
}

func (p *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := getDB(ctx, p.db).Unscoped().Delete(&model.Project{}, "id = ?", id.String())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (p *ProjectStore) CountEstimates(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := getDB(ctx, p.db).Model(&model.Estimate{}).Where("project_id = ?", id).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
