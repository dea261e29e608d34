package v1alpha1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/slabworks/concrete-planner/api/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/auth"
	"github.com/slabworks/concrete-planner/internal/estimation"
	handlers "github.com/slabworks/concrete-planner/internal/handlers/v1alpha1"
	"github.com/slabworks/concrete-planner/internal/service"
	"github.com/slabworks/concrete-planner/internal/store/model"
)

const testBaseURL = "http://localhost:3443"

func ptr[T any](v T) *T {
	return &v
}

func newServiceHandler(mockStore *MockStore) *handlers.ServiceHandler {
	return handlers.NewServiceHandler(
		service.NewEstimationService(mockStore),
		service.NewProjectService(mockStore),
		service.NewExportService(),
		service.NewDashboardService(mockStore),
		testBaseURL,
	)
}

// doRequest invokes a handler directly, carrying the auth context and the
// chi URL params the router would otherwise inject.
func doRequest(ctx context.Context, handlerFn http.HandlerFunc, method, target string, body any, params map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
	}
	req := httptest.NewRequest(method, target, &buf)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	req = req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handlerFn(rec, req)
	return rec
}

func newEstimateRequest() api.EstimateRequest {
	return api.EstimateRequest{
		VolumeM3: ptr(100.0),
		MixRatio: &estimation.MixRatio{Cement: 1, Sand: 2, Aggregate: 4},
		Name:     "slab pour",
		Location: "site A",
	}
}

func storedEstimate(user auth.User, projectID *uuid.UUID) *model.Estimate {
	result, err := estimation.Estimate(estimation.Input{
		VolumeM3: 100,
		MixRatio: estimation.MixRatio{Cement: 1, Sand: 2, Aggregate: 4},
	})
	Expect(err).ToNot(HaveOccurred())
	return &model.Estimate{
		ID:            uuid.New(),
		Name:          "slab pour",
		Location:      "site A",
		OrgID:         user.Organization,
		Username:      user.Username,
		ProjectID:     projectID,
		MixClass:      estimation.ClassifyMixRatio(result.Parameters.MixRatio),
		VolumeM3:      result.Parameters.VolumeM3,
		TotalVolumeM3: result.Totals.Volume,
		TotalMassKg:   result.Totals.Mass,
		TotalCost:     result.Totals.EstimatedCost,
		Result:        model.MakeJSONField(*result),
	}
}

var _ = Describe("estimate handler", func() {
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

	Describe("PreviewEstimate", func() {
		It("returns 200 with the computed bill of materials", func() {
			rec := doRequest(ctx, handler.PreviewEstimate, http.MethodPost, "/api/v1/estimates/preview", newEstimateRequest(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var result estimation.Result
			Expect(json.NewDecoder(rec.Body).Decode(&result)).To(Succeed())
			Expect(result.Totals.Volume).To(Equal(154.0))
			Expect(result.Cement.Bags).ToNot(BeNil())
			Expect(*result.Cement.Bags).To(Equal(666))
			Expect(result.Totals.Mass).To(Equal(268884.0))
		})

		It("does not persist anything", func() {
			rec := doRequest(ctx, handler.PreviewEstimate, http.MethodPost, "/api/v1/estimates/preview", newEstimateRequest(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(mockStore.estimates).To(BeEmpty())
		})

		It("returns 400 with the accumulated messages when validation fails", func() {
			req := newEstimateRequest()
			req.VolumeM3 = nil
			req.MixRatio.Cement = -1

			rec := doRequest(ctx, handler.PreviewEstimate, http.MethodPost, "/api/v1/estimates/preview", req, nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var apiErr api.Error
			Expect(json.NewDecoder(rec.Body).Decode(&apiErr)).To(Succeed())
			Expect(len(apiErr.Errors)).To(BeNumerically(">=", 2))
		})

		It("returns 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/estimates/preview", bytes.NewBufferString("{not json"))
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()
			handler.PreviewEstimate(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("CreateEstimate", func() {
		It("returns 201 with the result and export links, and stores the estimate", func() {
			rec := doRequest(ctx, handler.CreateEstimate, http.MethodPost, "/api/v1/estimates", newEstimateRequest(), nil)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var created api.EstimateCreated
			Expect(json.NewDecoder(rec.Body).Decode(&created)).To(Succeed())
			Expect(created.ID).ToNot(Equal(uuid.Nil))
			Expect(created.Results.Totals.Volume).To(Equal(154.0))
			Expect(created.Links.CSV).To(Equal(testBaseURL + "/api/v1/estimates/" + created.ID.String() + "/export?format=csv"))
			Expect(created.Links.XLSX).To(ContainSubstring("format=xlsx"))

			Expect(mockStore.estimates).To(HaveKey(created.ID))
			Expect(mockStore.estimates[created.ID].OrgID).To(Equal(user.Organization))
			Expect(mockStore.estimates[created.ID].MixClass).To(Equal("C20/25"))
		})

		It("classifies a non-preset ratio as custom", func() {
			req := newEstimateRequest()
			req.MixRatio = &estimation.MixRatio{Cement: 1, Sand: 3, Aggregate: 5}

			rec := doRequest(ctx, handler.CreateEstimate, http.MethodPost, "/api/v1/estimates", req, nil)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var created api.EstimateCreated
			Expect(json.NewDecoder(rec.Body).Decode(&created)).To(Succeed())
			Expect(mockStore.estimates[created.ID].MixClass).To(Equal(estimation.CustomMixClass))
		})

		It("returns 404 when the named project does not exist", func() {
			req := newEstimateRequest()
			req.ProjectID = ptr(uuid.New())

			rec := doRequest(ctx, handler.CreateEstimate, http.MethodPost, "/api/v1/estimates", req, nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 403 when the named project belongs to another organization", func() {
			projectID := uuid.New()
			mockStore.projects[projectID] = &model.Project{
				ID:    projectID,
				Name:  "other-project",
				OrgID: "other-org",
			}
			req := newEstimateRequest()
			req.ProjectID = &projectID

			rec := doRequest(ctx, handler.CreateEstimate, http.MethodPost, "/api/v1/estimates", req, nil)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("ListEstimates", func() {
		It("returns the stored estimates", func() {
			estimate := storedEstimate(user, nil)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.ListEstimates, http.MethodGet, "/api/v1/estimates", nil, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var estimates api.EstimateList
			Expect(decodeBody(rec, &estimates)).To(Succeed())
			Expect(estimates).To(HaveLen(1))
			Expect(estimates[0].ID).To(Equal(estimate.ID))
		})

		It("accepts limit and offset query parameters", func() {
			rec := doRequest(ctx, handler.ListEstimates, http.MethodGet, "/api/v1/estimates?limit=10&offset=5", nil, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("returns 400 for a malformed limit", func() {
			for _, target := range []string{
				"/api/v1/estimates?limit=abc",
				"/api/v1/estimates?limit=-1",
				"/api/v1/estimates?offset=x",
			} {
				rec := doRequest(ctx, handler.ListEstimates, http.MethodGet, target, nil, nil)
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
			}
		})

		It("returns 400 for a malformed projectId", func() {
			rec := doRequest(ctx, handler.ListEstimates, http.MethodGet, "/api/v1/estimates?projectId=nope", nil, nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GetEstimate", func() {
		It("returns 200 with the stored estimate", func() {
			estimate := storedEstimate(user, nil)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.GetEstimate, http.MethodGet, "/api/v1/estimates/"+estimate.ID.String(), nil, map[string]string{"id": estimate.ID.String()})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var out api.Estimate
			Expect(json.NewDecoder(rec.Body).Decode(&out)).To(Succeed())
			Expect(out.ID).To(Equal(estimate.ID))
			Expect(out.Results.Totals.Mass).To(Equal(268884.0))
		})

		It("returns 404 for an unknown estimate", func() {
			id := uuid.New()
			rec := doRequest(ctx, handler.GetEstimate, http.MethodGet, "/api/v1/estimates/"+id.String(), nil, map[string]string{"id": id.String()})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 403 for an estimate of another organization", func() {
			estimate := storedEstimate(auth.User{Username: "other", Organization: "other-org"}, nil)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.GetEstimate, http.MethodGet, "/api/v1/estimates/"+estimate.ID.String(), nil, map[string]string{"id": estimate.ID.String()})
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 for a malformed id", func() {
			rec := doRequest(ctx, handler.GetEstimate, http.MethodGet, "/api/v1/estimates/not-a-uuid", nil, map[string]string{"id": "not-a-uuid"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DeleteEstimate", func() {
		It("returns 204 and removes the estimate", func() {
			estimate := storedEstimate(user, nil)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.DeleteEstimate, http.MethodDelete, "/api/v1/estimates/"+estimate.ID.String(), nil, map[string]string{"id": estimate.ID.String()})
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mockStore.estimates).ToNot(HaveKey(estimate.ID))
		})

		It("returns 404 for an unknown estimate", func() {
			id := uuid.New()
			rec := doRequest(ctx, handler.DeleteEstimate, http.MethodDelete, "/api/v1/estimates/"+id.String(), nil, map[string]string{"id": id.String()})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("ExportEstimate", func() {
		It("returns a CSV attachment by default", func() {
			estimate := storedEstimate(user, nil)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.ExportEstimate, http.MethodGet, "/api/v1/estimates/"+estimate.ID.String()+"/export", nil, map[string]string{"id": estimate.ID.String()})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("text/csv"))
			Expect(rec.Header().Get("Content-Disposition")).To(ContainSubstring("estimate-" + estimate.ID.String() + ".csv"))
			Expect(rec.Body.String()).To(ContainSubstring("Cement"))
		})

		It("returns a JSON document when format=json", func() {
			estimate := storedEstimate(user, nil)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.ExportEstimate, http.MethodGet, "/api/v1/estimates/"+estimate.ID.String()+"/export?format=json", nil, map[string]string{"id": estimate.ID.String()})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
		})

		It("returns 400 for an unsupported format", func() {
			estimate := storedEstimate(user, nil)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.ExportEstimate, http.MethodGet, "/api/v1/estimates/"+estimate.ID.String()+"/export?format=pdf", nil, map[string]string{"id": estimate.ID.String()})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
