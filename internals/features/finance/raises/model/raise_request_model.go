package model

import (
	"time"

	"github.com/google/uuid"
)

// RaiseRequestModel. L'approbation est purement informative : aucun
// salaire n'est modifie par ce workflow (decision produit).
type RaiseRequestModel struct {
	RaiseRequestID            uuid.UUID `gorm:"column:raise_request_id;type:uuid;primaryKey" json:"raise_request_id"`
	RaiseRequestRequesterID   uuid.UUID `gorm:"column:raise_request_requester_id;type:uuid;not null;index" json:"raise_request_requester_id"`
	RaiseRequestRequesterType string    `gorm:"column:raise_request_requester_type;type:varchar(20);not null" json:"raise_request_requester_type"` // driver|supervisor
	RaiseRequestCurrentSalary float64   `gorm:"column:raise_request_current_salary;type:numeric(10,2);not null" json:"raise_request_current_salary"`
	RaiseRequestReasons       string    `gorm:"column:raise_request_reasons;type:text;not null" json:"raise_request_reasons"`
	RaiseRequestStatus        string    `gorm:"column:raise_request_status;type:varchar(20);not null;default:pending" json:"raise_request_status"` // pending|approved|rejected

	RaiseRequestCreatedAt time.Time  `gorm:"column:raise_request_created_at;autoCreateTime" json:"raise_request_created_at"`
	RaiseRequestUpdatedAt *time.Time `gorm:"column:raise_request_updated_at;autoUpdateTime" json:"raise_request_updated_at,omitempty"`
}

func (RaiseRequestModel) TableName() string { return "raise_requests" }
