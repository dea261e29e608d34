package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/auth"
	"github.com/slabworks/concrete-planner/internal/handlers/validator"
	"github.com/slabworks/concrete-planner/internal/store"
	"github.com/slabworks/concrete-planner/internal/store/model"
)

type ProjectService struct {
	store     store.Store
	validator *validator.Validator
}

func NewProjectService(store store.Store) *ProjectService {
	v := validator.NewValidator()
	v.Register(validator.NewProjectValidationRules()...)
	return &ProjectService{store: store, validator: v}
}

// ListProjects returns the caller organization's projects; a non-empty name
// narrows the list to projects whose name contains it.
func (s *ProjectService) ListProjects(ctx context.Context, user auth.User, name string) (model.ProjectList, error) {
	filter := store.NewProjectQueryFilter().ByOrgID(user.Organization)
	if name != "" {
		filter = filter.ByNameLike(name)
	}
	projects, err := s.store.Project().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, user auth.User, id uuid.UUID) (*model.Project, error) {
	project, err := s.store.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrProjectNotFound(id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project.OrgID != user.Organization {
		return nil, NewErrResourceAccessForbidden(id, "project")
	}
	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, user auth.User, form api.ProjectCreate) (*model.Project, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, NewErrValidation([]string{fmt.Sprintf("invalid project: %v", err)})
	}

	project := model.Project{
		ID:       uuid.New(),
		Name:     form.Name,
		Location: form.Location,
		OrgID:    user.Organization,
		Username: user.Username,
	}
	created, err := s.store.Project().Create(ctx, project)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrValidation([]string{fmt.Sprintf("a project named %q already exists", form.Name)})
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, user auth.User, id uuid.UUID, form api.ProjectUpdate) (*model.Project, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, NewErrValidation([]string{fmt.Sprintf("invalid project: %v", err)})
	}
	if _, err := s.GetProject(ctx, user, id); err != nil {
		return nil, err
	}

	updated, err := s.store.Project().Update(ctx, id, form.Name, form.Location)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrValidation([]string{"a project with that name already exists"})
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, user auth.User, id uuid.UUID) error {
	if _, err := s.GetProject(ctx, user, id); err != nil {
		return err
	}
	if err := s.store.Project().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) CountEstimates(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.store.Project().CountEstimates(ctx, id)
}
