package dto

import (
	"time"

	"github.com/google/uuid"

	"transportscolaire_backend/internals/features/finance/payments/model"
)

/* =============== REQUESTS =============== */

// ValidatePaymentRequest : l'admin encaisse et affecte en un geste.
// Le trajet n'est pas choisi ici, il est copie depuis le bus.
type ValidatePaymentRequest struct {
	BusID    uuid.UUID `json:"bus_id"    validate:"required"`
	BusGroup string    `json:"bus_group" validate:"required,oneof=A B"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID          uuid.UUID  `json:"payment_id"`
	StudentID          uuid.UUID  `json:"student_id"`
	TutorID            uuid.UUID  `json:"tutor_id"`
	Amount             float64    `json:"amount"`
	DiscountPercentage int        `json:"discount_percentage"`
	DiscountAmount     float64    `json:"discount_amount"`
	FinalAmount        float64    `json:"final_amount"`
	TransportType      string     `json:"transport_type"`
	SubscriptionType   string     `json:"subscription_type"`
	Status             string     `json:"status"`
	PaymentDate        *time.Time `json:"payment_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`

	// Renseignes par jointure pour l'affichage
	StudentFirstName string `json:"student_first_name,omitempty"`
	StudentLastName  string `json:"student_last_name,omitempty"`
}

func FromModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		StudentID:          m.PaymentStudentID,
		TutorID:            m.PaymentTutorID,
		Amount:             m.PaymentAmount,
		DiscountPercentage: m.PaymentDiscountPercentage,
		DiscountAmount:     m.PaymentDiscountAmount,
		FinalAmount:        m.PaymentFinalAmount,
		TransportType:      m.PaymentTransportType,
		SubscriptionType:   m.PaymentSubscriptionType,
		Status:             m.PaymentStatus,
		PaymentDate:        m.PaymentDate,
		CreatedAt:          m.PaymentCreatedAt,
	}
}

func FromModels(rows []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
