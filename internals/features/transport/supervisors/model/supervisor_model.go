package model

import (
	"time"

	"github.com/google/uuid"
)

// SupervisorModel etend users pour les superviseurs de bus.
type SupervisorModel struct {
	SupervisorID     uuid.UUID `gorm:"column:supervisor_id;type:uuid;primaryKey" json:"supervisor_id"`
	SupervisorUserID uuid.UUID `gorm:"column:supervisor_user_id;type:uuid;not null;uniqueIndex" json:"supervisor_user_id"`
	SupervisorAge    int       `gorm:"column:supervisor_age;not null" json:"supervisor_age"`
	SupervisorSalary float64   `gorm:"column:supervisor_salary;type:numeric(10,2);not null" json:"supervisor_salary"`

	SupervisorCreatedAt time.Time  `gorm:"column:supervisor_created_at;autoCreateTime" json:"supervisor_created_at"`
	SupervisorUpdatedAt *time.Time `gorm:"column:supervisor_updated_at;autoUpdateTime" json:"supervisor_updated_at,omitempty"`
}

func (SupervisorModel) TableName() string { return "supervisors" }
