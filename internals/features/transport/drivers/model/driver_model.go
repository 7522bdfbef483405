package model

import (
	"time"

	"github.com/google/uuid"
)

// DriverModel etend users pour les chauffeurs. Le compteur d'accidents
// est recalcule depuis la table accidents a chaque declaration, puis
// persiste ici pour les lectures.
type DriverModel struct {
	DriverID            uuid.UUID `gorm:"column:driver_id;type:uuid;primaryKey" json:"driver_id"`
	DriverUserID        uuid.UUID `gorm:"column:driver_user_id;type:uuid;not null;uniqueIndex" json:"driver_user_id"`
	DriverLicenseNumber string    `gorm:"column:driver_license_number;type:varchar(50);not null" json:"driver_license_number"`
	DriverAge           int       `gorm:"column:driver_age;not null" json:"driver_age"`
	DriverSalary        float64   `gorm:"column:driver_salary;type:numeric(10,2);not null" json:"driver_salary"`
	DriverAccidentCount int       `gorm:"column:driver_accident_count;not null;default:0" json:"driver_accident_count"`

	DriverCreatedAt time.Time  `gorm:"column:driver_created_at;autoCreateTime" json:"driver_created_at"`
	DriverUpdatedAt *time.Time `gorm:"column:driver_updated_at;autoUpdateTime" json:"driver_updated_at,omitempty"`
}

func (DriverModel) TableName() string { return "drivers" }
