package model

import (
	"time"

	"github.com/google/uuid"
)

type RouteModel struct {
	RouteID        uuid.UUID `gorm:"column:route_id;type:uuid;primaryKey" json:"route_id"`
	RouteCode      string    `gorm:"column:route_code;type:varchar(30);not null;index" json:"route_code"`
	RouteDeparture string    `gorm:"column:route_departure;type:varchar(150);not null" json:"route_departure"`
	RouteTerminus  string    `gorm:"column:route_terminus;type:varchar(150);not null" json:"route_terminus"`

	// Horaires indicatifs du trajet. Les creneaux des groupes A/B sont des
	// constantes d'ecole et ne derivent PAS de ces champs.
	RouteDepartureTimeMorning *string `gorm:"column:route_departure_time_morning;type:varchar(10)" json:"route_departure_time_morning,omitempty"`
	RouteArrivalTimeMorning   *string `gorm:"column:route_arrival_time_morning;type:varchar(10)" json:"route_arrival_time_morning,omitempty"`
	RouteDepartureTimeEvening *string `gorm:"column:route_departure_time_evening;type:varchar(10)" json:"route_departure_time_evening,omitempty"`
	RouteArrivalTimeEvening   *string `gorm:"column:route_arrival_time_evening;type:varchar(10)" json:"route_arrival_time_evening,omitempty"`

	RouteCreatedAt time.Time `gorm:"column:route_created_at;autoCreateTime" json:"route_created_at"`
}

func (RouteModel) TableName() string { return "routes" }
