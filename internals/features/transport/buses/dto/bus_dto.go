package dto

import (
	"time"

	"github.com/google/uuid"

	"transportscolaire_backend/internals/features/transport/buses/model"
)

/* =============== REQUESTS =============== */

type CreateBusRequest struct {
	Code         string     `json:"code"          validate:"required,max=30"`
	Matricule    string     `json:"matricule"     validate:"required,max=30"`
	Capacity     int        `json:"capacity"      validate:"required,min=1,max=100"`
	DriverID     *uuid.UUID `json:"driver_id"     validate:"omitempty"`
	SupervisorID *uuid.UUID `json:"supervisor_id" validate:"omitempty"`
	RouteID      *uuid.UUID `json:"route_id"      validate:"omitempty"`
	Status       string     `json:"status"        validate:"omitempty,oneof=en_service en_panne hors_service"`
}

func (r CreateBusRequest) ToModel() *model.BusModel {
	status := r.Status
	if status == "" {
		status = "en_service"
	}
	return &model.BusModel{
		BusID:           uuid.New(),
		BusCode:         r.Code,
		BusMatricule:    r.Matricule,
		BusCapacity:     r.Capacity,
		BusDriverID:     r.DriverID,
		BusSupervisorID: r.SupervisorID,
		BusRouteID:      r.RouteID,
		BusStatus:       status,
	}
}

// UpdateBusRequest : mise a jour partielle, seuls les champs fournis
// changent. Un pointeur vers uuid.Nil detache l'affectation.
type UpdateBusRequest struct {
	Code         *string    `json:"code"          validate:"omitempty,max=30"`
	Matricule    *string    `json:"matricule"     validate:"omitempty,max=30"`
	Capacity     *int       `json:"capacity"      validate:"omitempty,min=1,max=100"`
	DriverID     *uuid.UUID `json:"driver_id"     validate:"omitempty"`
	SupervisorID *uuid.UUID `json:"supervisor_id" validate:"omitempty"`
	RouteID      *uuid.UUID `json:"route_id"      validate:"omitempty"`
	Status       *string    `json:"status"        validate:"omitempty,oneof=en_service en_panne hors_service"`
}

/* =============== RESPONSES =============== */

type BusResponse struct {
	BusID        uuid.UUID  `json:"bus_id"`
	Code         string     `json:"code"`
	Matricule    string     `json:"matricule"`
	Capacity     int        `json:"capacity"`
	DriverID     *uuid.UUID `json:"driver_id,omitempty"`
	SupervisorID *uuid.UUID `json:"supervisor_id,omitempty"`
	RouteID      *uuid.UUID `json:"route_id,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`

	StudentCount int64 `json:"student_count"`
}

func FromModel(m model.BusModel) BusResponse {
	return BusResponse{
		BusID:        m.BusID,
		Code:         m.BusCode,
		Matricule:    m.BusMatricule,
		Capacity:     m.BusCapacity,
		DriverID:     m.BusDriverID,
		SupervisorID: m.BusSupervisorID,
		RouteID:      m.BusRouteID,
		Status:       m.BusStatus,
		CreatedAt:    m.BusCreatedAt,
	}
}

func FromModels(rows []model.BusModel) []BusResponse {
	out := make([]BusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
