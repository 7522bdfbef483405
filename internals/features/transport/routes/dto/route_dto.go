package dto

import (
	"time"

	"github.com/google/uuid"

	"transportscolaire_backend/internals/features/transport/routes/model"
)

// Depart par defaut : tous les trajets partent de l'ecole.
const DefaultDeparture = "École Mohammed V"

/* =============== REQUESTS =============== */

type CreateRouteRequest struct {
	Code                 string  `json:"code"      validate:"required,max=30"`
	Departure            string  `json:"departure" validate:"omitempty,max=150"`
	Terminus             string  `json:"terminus"  validate:"required,max=150"`
	DepartureTimeMorning *string `json:"departure_time_morning" validate:"omitempty,max=10"`
	ArrivalTimeMorning   *string `json:"arrival_time_morning"   validate:"omitempty,max=10"`
	DepartureTimeEvening *string `json:"departure_time_evening" validate:"omitempty,max=10"`
	ArrivalTimeEvening   *string `json:"arrival_time_evening"   validate:"omitempty,max=10"`
}

func (r CreateRouteRequest) ToModel() *model.RouteModel {
	departure := r.Departure
	if departure == "" {
		departure = DefaultDeparture
	}
	return &model.RouteModel{
		RouteID:                   uuid.New(),
		RouteCode:                 r.Code,
		RouteDeparture:            departure,
		RouteTerminus:             r.Terminus,
		RouteDepartureTimeMorning: r.DepartureTimeMorning,
		RouteArrivalTimeMorning:   r.ArrivalTimeMorning,
		RouteDepartureTimeEvening: r.DepartureTimeEvening,
		RouteArrivalTimeEvening:   r.ArrivalTimeEvening,
	}
}

type UpdateRouteRequest struct {
	Code                 *string `json:"code"      validate:"omitempty,max=30"`
	Departure            *string `json:"departure" validate:"omitempty,max=150"`
	Terminus             *string `json:"terminus"  validate:"omitempty,max=150"`
	DepartureTimeMorning *string `json:"departure_time_morning" validate:"omitempty,max=10"`
	ArrivalTimeMorning   *string `json:"arrival_time_morning"   validate:"omitempty,max=10"`
	DepartureTimeEvening *string `json:"departure_time_evening" validate:"omitempty,max=10"`
	ArrivalTimeEvening   *string `json:"arrival_time_evening"   validate:"omitempty,max=10"`
}

func (r UpdateRouteRequest) ApplyTo(m *model.RouteModel) {
	if r.Code != nil {
		m.RouteCode = *r.Code
	}
	if r.Departure != nil {
		m.RouteDeparture = *r.Departure
	}
	if r.Terminus != nil {
		m.RouteTerminus = *r.Terminus
	}
	if r.DepartureTimeMorning != nil {
		m.RouteDepartureTimeMorning = r.DepartureTimeMorning
	}
	if r.ArrivalTimeMorning != nil {
		m.RouteArrivalTimeMorning = r.ArrivalTimeMorning
	}
	if r.DepartureTimeEvening != nil {
		m.RouteDepartureTimeEvening = r.DepartureTimeEvening
	}
	if r.ArrivalTimeEvening != nil {
		m.RouteArrivalTimeEvening = r.ArrivalTimeEvening
	}
}

/* =============== RESPONSES =============== */

type RouteResponse struct {
	RouteID              uuid.UUID `json:"route_id"`
	Code                 string    `json:"code"`
	Departure            string    `json:"departure"`
	Terminus             string    `json:"terminus"`
	DepartureTimeMorning *string   `json:"departure_time_morning,omitempty"`
	ArrivalTimeMorning   *string   `json:"arrival_time_morning,omitempty"`
	DepartureTimeEvening *string   `json:"departure_time_evening,omitempty"`
	ArrivalTimeEvening   *string   `json:"arrival_time_evening,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func FromModel(m model.RouteModel) RouteResponse {
	return RouteResponse{
		RouteID:              m.RouteID,
		Code:                 m.RouteCode,
		Departure:            m.RouteDeparture,
		Terminus:             m.RouteTerminus,
		DepartureTimeMorning: m.RouteDepartureTimeMorning,
		ArrivalTimeMorning:   m.RouteArrivalTimeMorning,
		DepartureTimeEvening: m.RouteDepartureTimeEvening,
		ArrivalTimeEvening:   m.RouteArrivalTimeEvening,
		CreatedAt:            m.RouteCreatedAt,
	}
}

func FromModels(rows []model.RouteModel) []RouteResponse {
	out := make([]RouteResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
