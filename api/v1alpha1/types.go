// Package v1alpha1 contains the JSON types of the public API.
package v1alpha1

import (
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/concrete-planner/internal/estimation"
)

// EstimateRequest is the body of both the preview and the create endpoints.
// Required fields are pointers so request validation can distinguish
// "missing" from "zero" and report each violation separately.
type EstimateRequest struct {
	VolumeM3      *float64              `json:"volumeM3"`
	MixRatio      *estimation.MixRatio  `json:"mixRatio"`
	Densities     *estimation.Densities `json:"densities,omitempty"`
	DryFactor     *float64              `json:"dryFactor,omitempty"`
	WastageFactor *float64              `json:"wastageFactor,omitempty"`
	Costs         *estimation.CostTable `json:"costs,omitempty"`

	// Display metadata; persisted but never fed into the calculation.
	ProjectID *uuid.UUID `json:"projectId,omitempty"`
	Name      string     `json:"name,omitempty"`
	Location  string     `json:"location,omitempty"`
}

// ExportLinks points a client at the rendered bill-of-materials downloads
// for a stored estimate.
type ExportLinks struct {
	CSV  string `json:"csv"`
	JSON string `json:"json"`
	XLSX string `json:"xlsx"`
}

// EstimateCreated is the success response of the create endpoint.
type EstimateCreated struct {
	ID      uuid.UUID         `json:"id"`
	Results estimation.Result `json:"results"`
	Links   ExportLinks       `json:"links"`
}

// Estimate is a stored estimate as returned by the read endpoints.
type Estimate struct {
	ID        uuid.UUID         `json:"id"`
	ProjectID *uuid.UUID        `json:"projectId,omitempty"`
	Name      string            `json:"name,omitempty"`
	Location  string            `json:"location,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	Results   estimation.Result `json:"results"`
}

type EstimateList []Estimate

// Project groups estimates under a display name and site location.
type Project struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	EstimateCount int64      `json:"estimateCount"`
}

type ProjectList []Project

type ProjectCreate struct {
	Name     string `json:"name" validate:"required,project_name,max=100"`
	Location string `json:"location" validate:"max=200"`
}

type ProjectUpdate struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,project_name,max=100"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=200"`
}

// PresetMixRatio is one entry of the preset registry, keyed by concrete class.
type PresetMixRatio struct {
	Class string              `json:"class"`
	Ratio estimation.MixRatio `json:"ratio"`
}

// ClassUsage is the number of stored estimates for one concrete class.
type ClassUsage struct {
	MixClass  string `json:"mixClass"`
	Estimates int64  `json:"estimates"`
}

// DashboardStats aggregates an organization's stored estimates.
type DashboardStats struct {
	Projects           int64        `json:"projects"`
	Estimates          int64        `json:"estimates"`
	TotalVolumeM3      float64      `json:"totalVolumeM3"`
	TotalEstimatedCost float64      `json:"totalEstimatedCost"`
	UsageByClass       []ClassUsage `json:"usageByClass"`
}

// Error is the common error envelope. Errors carries the accumulated
// validation messages when the request failed validation.
type Error struct {
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
	RequestID *string  `json:"requestId,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
