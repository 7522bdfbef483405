package model

import (
	"time"

	"github.com/google/uuid"
)

type AccidentModel struct {
	AccidentID       uuid.UUID `gorm:"column:accident_id;type:uuid;primaryKey" json:"accident_id"`
	AccidentDriverID uuid.UUID `gorm:"column:accident_driver_id;type:uuid;not null;index" json:"accident_driver_id"`
	AccidentBusID    uuid.UUID `gorm:"column:accident_bus_id;type:uuid;not null;index" json:"accident_bus_id"`
	AccidentDate     string    `gorm:"column:accident_date;type:date;not null" json:"accident_date"` // YYYY-MM-DD
	AccidentReport   string    `gorm:"column:accident_report;type:text;not null" json:"accident_report"`
	AccidentSeverity string    `gorm:"column:accident_severity;type:varchar(20);not null" json:"accident_severity"`

	AccidentCreatedAt time.Time `gorm:"column:accident_created_at;autoCreateTime" json:"accident_created_at"`
}

func (AccidentModel) TableName() string { return "accidents" }
