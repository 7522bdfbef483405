package dto

import (
	"github.com/google/uuid"

	"transportscolaire_backend/internals/features/school/attendance/model"
)

/* =============== REQUESTS =============== */

// MarkAttendanceRequest : le superviseur marque un eleve de son bus.
// La date est au format YYYY-MM-DD ; vide = aujourd'hui.
type MarkAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Date      string    `json:"date"       validate:"omitempty,datetime=2006-01-02"`
	Period    string    `json:"period"     validate:"required,oneof=morning evening"`
	Status    string    `json:"status"     validate:"required,oneof=present absent"`
}

/* =============== RESPONSES =============== */

type AttendanceResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	StudentID    uuid.UUID `json:"student_id"`
	BusID        uuid.UUID `json:"bus_id"`
	Date         string    `json:"date"`
	Period       string    `json:"period"`
	Status       string    `json:"status"`
	BusGroup     string    `json:"bus_group"`

	StudentFirstName string `json:"student_first_name,omitempty"`
	StudentLastName  string `json:"student_last_name,omitempty"`
	StudentClass     string `json:"student_class,omitempty"`
}

func FromModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: m.AttendanceID,
		StudentID:    m.AttendanceStudentID,
		BusID:        m.AttendanceBusID,
		Date:         m.AttendanceDate,
		Period:       m.AttendancePeriod,
		Status:       m.AttendanceStatus,
		BusGroup:     m.AttendanceBusGroup,
	}
}

// AbsenceReport : absences filtrees + compteurs globaux (toutes dates
// et tous bus confondus, independamment des filtres).
type AbsenceReport struct {
	Absences             []AttendanceResponse `json:"absences"`
	TotalAbsences        int64                `json:"total_absences"`
	StudentsWithAbsences int64                `json:"students_with_absences"`
}

// SheetEntry : une ligne de la feuille d'appel du superviseur, l'etat
// du jour fusionne avec la liste des eleves payes du bus.
type SheetEntry struct {
	StudentID     uuid.UUID `json:"student_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Class         string    `json:"class"`
	BusGroup      string    `json:"bus_group"`
	AbsenceCount  int       `json:"absence_count"`
	MorningStatus string    `json:"morning_status"` // present|absent|"" si non marque
	EveningStatus string    `json:"evening_status"`
}
