package v1alpha1_test

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/auth"
	handlers "github.com/slabworks/concrete-planner/internal/handlers/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/store/model"
)

var _ = Describe("project handler", func() {
	var (
		mockStore *MockStore
		handler   *handlers.ServiceHandler
		ctx       context.Context
		user      auth.User
	)

	BeforeEach(func() {
		mockStore = NewMockStore()
		handler = newServiceHandler(mockStore)
		user = auth.User{
			Username:     "test-user",
			Organization: "test-org",
		}
		ctx = auth.NewTokenContext(context.Background(), user)
	})

	Describe("CreateProject", func() {
		It("returns 201 with the created project", func() {
			form := api.ProjectCreate{Name: "warehouse-extension", Location: "lot 12"}
			rec := doRequest(ctx, handler.CreateProject, http.MethodPost, "/api/v1/projects", form, nil)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var project api.Project
			Expect(decodeBody(rec, &project)).To(Succeed())
			Expect(project.Name).To(Equal("warehouse-extension"))
			Expect(project.EstimateCount).To(BeZero())
			Expect(mockStore.projects).To(HaveKey(project.ID))
		})

		It("returns 400 for an invalid name", func() {
			form := api.ProjectCreate{Name: "bad name!"}
			rec := doRequest(ctx, handler.CreateProject, http.MethodPost, "/api/v1/projects", form, nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when the name already exists in the organization", func() {
			form := api.ProjectCreate{Name: "warehouse-extension"}
			rec := doRequest(ctx, handler.CreateProject, http.MethodPost, "/api/v1/projects", form, nil)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			rec = doRequest(ctx, handler.CreateProject, http.MethodPost, "/api/v1/projects", form, nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GetProject", func() {
		It("returns 200 with the estimate count", func() {
			projectID := uuid.New()
			mockStore.projects[projectID] = &model.Project{ID: projectID, Name: "bridge", OrgID: user.Organization}
			estimate := storedEstimate(user, &projectID)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.GetProject, http.MethodGet, "/api/v1/projects/"+projectID.String(), nil, map[string]string{"id": projectID.String()})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var project api.Project
			Expect(decodeBody(rec, &project)).To(Succeed())
			Expect(project.EstimateCount).To(Equal(int64(1)))
		})

		It("returns 404 for an unknown project", func() {
			id := uuid.New()
			rec := doRequest(ctx, handler.GetProject, http.MethodGet, "/api/v1/projects/"+id.String(), nil, map[string]string{"id": id.String()})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 403 for a project of another organization", func() {
			projectID := uuid.New()
			mockStore.projects[projectID] = &model.Project{ID: projectID, Name: "bridge", OrgID: "other-org"}

			rec := doRequest(ctx, handler.GetProject, http.MethodGet, "/api/v1/projects/"+projectID.String(), nil, map[string]string{"id": projectID.String()})
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("UpdateProject", func() {
		It("returns 200 with the updated fields", func() {
			projectID := uuid.New()
			mockStore.projects[projectID] = &model.Project{ID: projectID, Name: "bridge", OrgID: user.Organization}

			form := api.ProjectUpdate{Name: ptr("bridge-north")}
			rec := doRequest(ctx, handler.UpdateProject, http.MethodPut, "/api/v1/projects/"+projectID.String(), form, map[string]string{"id": projectID.String()})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var project api.Project
			Expect(decodeBody(rec, &project)).To(Succeed())
			Expect(project.Name).To(Equal("bridge-north"))
		})
	})

	Describe("DeleteProject", func() {
		It("returns 204 and removes the project", func() {
			projectID := uuid.New()
			mockStore.projects[projectID] = &model.Project{ID: projectID, Name: "bridge", OrgID: user.Organization}

			rec := doRequest(ctx, handler.DeleteProject, http.MethodDelete, "/api/v1/projects/"+projectID.String(), nil, map[string]string{"id": projectID.String()})
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mockStore.projects).ToNot(HaveKey(projectID))
		})
	})

	Describe("ListProjects", func() {
		It("returns the organization's projects", func() {
			projectID := uuid.New()
			mockStore.projects[projectID] = &model.Project{ID: projectID, Name: "bridge", OrgID: user.Organization}

			rec := doRequest(ctx, handler.ListProjects, http.MethodGet, "/api/v1/projects", nil, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var projects api.ProjectList
			Expect(decodeBody(rec, &projects)).To(Succeed())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].ID).To(Equal(projectID))
		})
	})
})
