package v1alpha1_test

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/slabworks/concrete-planner/internal/store"
	"github.com/slabworks/concrete-planner/internal/store/model"
)

// MockStore is a mock implementation of store.Store
type MockStore struct {
	projects  map[uuid.UUID]*model.Project
	estimates map[uuid.UUID]*model.Estimate
	getError  error
}

func NewMockStore() *MockStore {
	return &MockStore{
		projects:  make(map[uuid.UUID]*model.Project),
		estimates: make(map[uuid.UUID]*model.Estimate),
	}
}

func (m *MockStore) Project() store.Project {
	return &MockProjectStore{store: m}
}

func (m *MockStore) Estimate() store.Estimate {
	return &MockEstimateStore{store: m}
}

func (m *MockStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

func (m *MockStore) Statistics(ctx context.Context, orgID string) (model.EstimateStats, error) {
	stats := model.EstimateStats{}
	for _, p := range m.projects {
		if p.OrgID == orgID {
			stats.Projects++
		}
	}
	usage := make(map[string]int64)
	for _, e := range m.estimates {
		if e.OrgID == orgID {
			stats.Estimates++
			stats.TotalVolumeM3 += e.VolumeM3
			stats.TotalEstimatedCost += e.TotalCost
			usage[e.MixClass]++
		}
	}
	classes := make([]string, 0, len(usage))
	for class := range usage {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		if usage[classes[i]] != usage[classes[j]] {
			return usage[classes[i]] > usage[classes[j]]
		}
		return classes[i] < classes[j]
	})
	for _, class := range classes {
		stats.UsageByClass = append(stats.UsageByClass, model.ClassUsage{MixClass: class, Estimates: usage[class]})
	}
	return stats, nil
}

func (m *MockStore) InitialMigration() error {
	return nil
}

func (m *MockStore) Close() error {
	return nil
}

type MockProjectStore struct {
	store *MockStore
}

func (m *MockProjectStore) List(ctx context.Context, filter *store.ProjectQueryFilter) (model.ProjectList, error) {
	out := make(model.ProjectList, 0, len(m.store.projects))
	for _, p := range m.store.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockProjectStore) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	if m.store.getError != nil {
		return nil, m.store.getError
	}
	project, exists := m.store.projects[id]
	if !exists {
		return nil, store.ErrRecordNotFound
	}
	return project, nil
}

func (m *MockProjectStore) Create(ctx context.Context, project model.Project) (*model.Project, error) {
	for _, p := range m.store.projects {
		if p.OrgID == project.OrgID && p.Name == project.Name {
			return nil, store.ErrDuplicateKey
		}
	}
	m.store.projects[project.ID] = &project
	return &project, nil
}

func (m *MockProjectStore) Update(ctx context.Context, id uuid.UUID, name *string, location *string) (*model.Project, error) {
	project, exists := m.store.projects[id]
	if !exists {
		return nil, store.ErrRecordNotFound
	}
	if name != nil {
		project.Name = *name
	}
	if location != nil {
		project.Location = *location
	}
	return project, nil
}

func (m *MockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.store.projects, id)
	return nil
}

func (m *MockProjectStore) CountEstimates(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, e := range m.store.estimates {
		if e.ProjectID != nil && *e.ProjectID == id {
			count++
		}
	}
	return count, nil
}

type MockEstimateStore struct {
	store *MockStore
}

func (m *MockEstimateStore) List(ctx context.Context, filter *store.EstimateQueryFilter, options *store.EstimateQueryOptions) (model.EstimateList, error) {
	out := make(model.EstimateList, 0, len(m.store.estimates))
	for _, e := range m.store.estimates {
		out = append(out, *e)
	}
	return out, nil
}

func (m *MockEstimateStore) Get(ctx context.Context, id uuid.UUID) (*model.Estimate, error) {
	if m.store.getError != nil {
		return nil, m.store.getError
	}
	estimate, exists := m.store.estimates[id]
	if !exists {
		return nil, store.ErrRecordNotFound
	}
	return estimate, nil
}

func (m *MockEstimateStore) Create(ctx context.Context, estimate model.Estimate) (*model.Estimate, error) {
	m.store.estimates[estimate.ID] = &estimate
	return &estimate, nil
}

func (m *MockEstimateStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.store.estimates, id)
	return nil
}
