package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/concrete-planner/internal/estimation"
)

// Estimate persists one estimation run. The full engine output is stored as
// a jsonb document; the scalar columns duplicate the totals so dashboard
// aggregation stays in SQL.
type Estimate struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt time.Time `gorm:"not null"`
	Name      string    `gorm:"type:VARCHAR(255)"`
	Location  string    `gorm:"type:VARCHAR(255)"`
	OrgID     string    `gorm:"not null;index:estimates_org_id_idx"`
	Username  string    `gorm:"type:VARCHAR(255)"`
	ProjectID *uuid.UUID `gorm:"type:VARCHAR(255);index"`

	// MixClass is the concrete class the mix ratio matched at creation
	// ("C20/25", ...) or "custom"; the dashboard groups usage by it.
	MixClass string `gorm:"type:VARCHAR(255);not null;index:estimates_mix_class_idx"`

	VolumeM3      float64 `gorm:"not null"`
	TotalVolumeM3 float64 `gorm:"not null"`
	TotalMassKg   float64 `gorm:"not null"`
	TotalCost     float64 `gorm:"not null"`

	Result *JSONField[estimation.Result] `gorm:"type:jsonb;not null"`
}

type EstimateList []Estimate

func (e Estimate) String() string {
	val, _ := json.Marshal(e)
	return string(val)
}
