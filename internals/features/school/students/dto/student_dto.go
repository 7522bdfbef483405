package dto

import (
	"time"

	"github.com/google/uuid"

	"transportscolaire_backend/internals/constants"
	"transportscolaire_backend/internals/features/school/students/model"
)

/* =============== REQUESTS =============== */

type CreateStudentRequest struct {
	FirstName        string `json:"first_name"        validate:"required,min=2,max=100"`
	LastName         string `json:"last_name"         validate:"required,min=2,max=100"`
	Class            string `json:"class"             validate:"required,max=30"`
	Age              int    `json:"age"               validate:"required,min=3,max=25"`
	Gender           string `json:"gender"            validate:"required,oneof=garcon fille"`
	Zone             string `json:"zone"              validate:"required,max=100"`
	ParentRelation   string `json:"parent_relation"   validate:"required,max=30"`
	TransportType    string `json:"transport_type"    validate:"required,max=30"`
	SubscriptionType string `json:"subscription_type" validate:"required,oneof=mensuel annuel"`
}

func (r CreateStudentRequest) ToModel(tutorID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentID:               uuid.New(),
		StudentTutorID:          tutorID,
		StudentFirstName:        r.FirstName,
		StudentLastName:         r.LastName,
		StudentClass:            r.Class,
		StudentAge:              r.Age,
		StudentGender:           r.Gender,
		StudentZone:             r.Zone,
		StudentParentRelation:   r.ParentRelation,
		StudentTransportType:    r.TransportType,
		StudentSubscriptionType: r.SubscriptionType,
		StudentStatus:           "pending",
		StudentPaymentStatus:    "unpaid",
	}
}

/* =============== RESPONSES =============== */

// StudentResponse : vue eleve cote tuteur et admin. Le montant est le
// tarif de base de l'abonnement, la remise familiale n'apparait que sur
// la ligne de paiement.
type StudentResponse struct {
	StudentID        uuid.UUID  `json:"student_id"`
	TutorID          uuid.UUID  `json:"tutor_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Class            string     `json:"class"`
	Age              int        `json:"age"`
	Gender           string     `json:"gender"`
	Zone             string     `json:"zone"`
	ParentRelation   string     `json:"parent_relation"`
	TransportType    string     `json:"transport_type"`
	SubscriptionType string     `json:"subscription_type"`
	Amount           float64    `json:"amount"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	AbsenceCount     int        `json:"absence_count"`
	BusID            *uuid.UUID `json:"bus_id,omitempty"`
	BusGroup         *string    `json:"bus_group,omitempty"`
	GroupSchedule    string     `json:"group_schedule,omitempty"`
	RouteID          *uuid.UUID `json:"route_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`

	// Renseignes par jointure quand l'eleve est affecte
	BusName       string `json:"bus_name,omitempty"`
	RouteDeparture string `json:"route_departure,omitempty"`
	RouteTerminus  string `json:"route_terminus,omitempty"`
}

func FromModel(m model.StudentModel) StudentResponse {
	resp := StudentResponse{
		StudentID:        m.StudentID,
		TutorID:          m.StudentTutorID,
		FirstName:        m.StudentFirstName,
		LastName:         m.StudentLastName,
		Class:            m.StudentClass,
		Age:              m.StudentAge,
		Gender:           m.StudentGender,
		Zone:             m.StudentZone,
		ParentRelation:   m.StudentParentRelation,
		TransportType:    m.StudentTransportType,
		SubscriptionType: m.StudentSubscriptionType,
		Amount:           constants.SubscriptionAmount(m.StudentSubscriptionType),
		Status:           m.StudentStatus,
		PaymentStatus:    m.StudentPaymentStatus,
		AbsenceCount:     m.StudentAbsenceCount,
		BusID:            m.StudentBusID,
		BusGroup:         m.StudentBusGroup,
		RouteID:          m.StudentRouteID,
		CreatedAt:        m.StudentCreatedAt,
	}
	if m.StudentBusGroup != nil {
		resp.GroupSchedule = constants.GroupScheduleText(*m.StudentBusGroup)
	}
	return resp
}

func FromModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
