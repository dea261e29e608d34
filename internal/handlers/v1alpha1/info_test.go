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

var _ = Describe("info handlers", func() {
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

	Describe("ListPresetMixRatios", func() {
		It("returns the presets sorted by class", func() {
			rec := doRequest(ctx, handler.ListPresetMixRatios, http.MethodGet, "/api/v1/presets/mix-ratios", nil, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var presets []api.PresetMixRatio
			Expect(decodeBody(rec, &presets)).To(Succeed())
			Expect(presets).To(HaveLen(4))
			Expect(presets[0].Class).To(Equal("C20/25"))
			Expect(presets[0].Ratio.Sand).To(Equal(2.0))
		})
	})

	Describe("Health", func() {
		It("returns ok", func() {
			rec := doRequest(ctx, handler.Health, http.MethodGet, "/api/v1/health", nil, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var health api.Health
			Expect(decodeBody(rec, &health)).To(Succeed())
			Expect(health.Status).To(Equal("ok"))
		})
	})

	Describe("DashboardStats", func() {
		It("aggregates the organization's projects and estimates", func() {
			projectID := uuid.New()
			mockStore.projects[projectID] = &model.Project{ID: projectID, Name: "bridge", OrgID: user.Organization}
			estimate := storedEstimate(user, &projectID)
			mockStore.estimates[estimate.ID] = estimate

			rec := doRequest(ctx, handler.DashboardStats, http.MethodGet, "/api/v1/dashboard/stats", nil, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var stats api.DashboardStats
			Expect(decodeBody(rec, &stats)).To(Succeed())
			Expect(stats.Projects).To(Equal(int64(1)))
			Expect(stats.Estimates).To(Equal(int64(1)))
			Expect(stats.TotalVolumeM3).To(Equal(100.0))
			Expect(stats.TotalEstimatedCost).To(Equal(estimate.TotalCost))
			Expect(stats.UsageByClass).To(Equal([]api.ClassUsage{
				{MixClass: "C20/25", Estimates: 1},
			}))
		})
	})
})
