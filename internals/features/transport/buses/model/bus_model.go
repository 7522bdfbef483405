package model

import (
	"time"

	"github.com/google/uuid"
)

// BusModel. Un chauffeur, un superviseur et un trajet ne peuvent etre
// references que par un seul bus a la fois : la contrainte est verifiee
// explicitement a l'affectation (controller), pas par un index.
type BusModel struct {
	BusID           uuid.UUID  `gorm:"column:bus_id;type:uuid;primaryKey" json:"bus_id"`
	BusCode         string     `gorm:"column:bus_code;type:varchar(30);not null;index" json:"bus_code"` // libelle "BUS-01"
	BusMatricule    string     `gorm:"column:bus_matricule;type:varchar(30);not null" json:"bus_matricule"`
	BusCapacity     int        `gorm:"column:bus_capacity;not null" json:"bus_capacity"`
	BusDriverID     *uuid.UUID `gorm:"column:bus_driver_id;type:uuid" json:"bus_driver_id,omitempty"`
	BusSupervisorID *uuid.UUID `gorm:"column:bus_supervisor_id;type:uuid" json:"bus_supervisor_id,omitempty"`
	BusRouteID      *uuid.UUID `gorm:"column:bus_route_id;type:uuid" json:"bus_route_id,omitempty"`
	BusStatus       string     `gorm:"column:bus_status;type:varchar(20);not null;default:en_service" json:"bus_status"`

	BusCreatedAt time.Time  `gorm:"column:bus_created_at;autoCreateTime" json:"bus_created_at"`
	BusUpdatedAt *time.Time `gorm:"column:bus_updated_at;autoUpdateTime" json:"bus_updated_at,omitempty"`
}

func (BusModel) TableName() string { return "buses" }
