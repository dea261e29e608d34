package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt *time.Time
	Name      string     `gorm:"not null;uniqueIndex:projects_org_id_name"`
	OrgID     string     `gorm:"not null;uniqueIndex:projects_org_id_name;index:projects_org_id_idx"`
	Username  string     `gorm:"type:VARCHAR(255)"`
	Location  string     `gorm:"type:VARCHAR(255)"`
	Estimates []Estimate `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL;"`
}

type ProjectList []Project

func (p Project) String() string {
	val, _ := json.Marshal(p)
	return string(val)
}
