package dto

import (
	"time"

	"github.com/google/uuid"

	"transportscolaire_backend/internals/features/incidents/accidents/model"
)

/* =============== REQUESTS =============== */

// ReportAccidentRequest : le bus n'est pas choisi, c'est celui du
// chauffeur connecte. Date vide = aujourd'hui.
type ReportAccidentRequest struct {
	Date     string `json:"date"     validate:"omitempty,datetime=2006-01-02"`
	Report   string `json:"report"   validate:"required,min=10"`
	Severity string `json:"severity" validate:"required,oneof=leger moyen grave"`
}

// RecordAccidentRequest : saisie cote administration. Le chauffeur et
// le bus concernes sont designes explicitement.
type RecordAccidentRequest struct {
	DriverID uuid.UUID `json:"driver_id" validate:"required"`
	BusID    uuid.UUID `json:"bus_id"    validate:"required"`
	Date     string    `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	Report   string    `json:"report"    validate:"required,min=10"`
	Severity string    `json:"severity"  validate:"required,oneof=leger moyen grave"`
}

/* =============== RESPONSES =============== */

type AccidentResponse struct {
	AccidentID uuid.UUID `json:"accident_id"`
	DriverID   uuid.UUID `json:"driver_id"`
	BusID      uuid.UUID `json:"bus_id"`
	Date       string    `json:"date"`
	Report     string    `json:"report"`
	Severity   string    `json:"severity"`
	CreatedAt  time.Time `json:"created_at"`

	DriverFirstName string `json:"driver_first_name,omitempty"`
	DriverLastName  string `json:"driver_last_name,omitempty"`
	BusName         string `json:"bus_name,omitempty"`
}

func FromModel(m model.AccidentModel) AccidentResponse {
	return AccidentResponse{
		AccidentID: m.AccidentID,
		DriverID:   m.AccidentDriverID,
		BusID:      m.AccidentBusID,
		Date:       m.AccidentDate,
		Report:     m.AccidentReport,
		Severity:   m.AccidentSeverity,
		CreatedAt:  m.AccidentCreatedAt,
	}
}

func FromModels(rows []model.AccidentModel) []AccidentResponse {
	out := make([]AccidentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}

// ReportResult : l'accident insere + le compteur recalcule et le
// verdict d'escalade.
type ReportResult struct {
	Accident      AccidentResponse `json:"accident"`
	AccidentCount int              `json:"accident_count"`
	Escalated     bool             `json:"escalated"`
}
