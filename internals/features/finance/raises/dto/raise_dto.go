package dto

import (
	"time"

	"github.com/google/uuid"

	"transportscolaire_backend/internals/features/finance/raises/model"
)

/* =============== REQUESTS =============== */

type CreateRaiseRequest struct {
	Reasons string `json:"reasons" validate:"required,min=10"`
}

type ResolveRaiseRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

/* =============== RESPONSES =============== */

type RaiseResponse struct {
	RaiseRequestID uuid.UUID  `json:"raise_request_id"`
	RequesterID    uuid.UUID  `json:"requester_id"`
	RequesterType  string     `json:"requester_type"`
	CurrentSalary  float64    `json:"current_salary"`
	Reasons        string     `json:"reasons"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`

	RequesterFirstName string `json:"requester_first_name,omitempty"`
	RequesterLastName  string `json:"requester_last_name,omitempty"`
}

func FromModel(m model.RaiseRequestModel) RaiseResponse {
	return RaiseResponse{
		RaiseRequestID: m.RaiseRequestID,
		RequesterID:    m.RaiseRequestRequesterID,
		RequesterType:  m.RaiseRequestRequesterType,
		CurrentSalary:  m.RaiseRequestCurrentSalary,
		Reasons:        m.RaiseRequestReasons,
		Status:         m.RaiseRequestStatus,
		CreatedAt:      m.RaiseRequestCreatedAt,
		UpdatedAt:      m.RaiseRequestUpdatedAt,
	}
}

func FromModels(rows []model.RaiseRequestModel) []RaiseResponse {
	out := make([]RaiseResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
