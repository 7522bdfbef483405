package dto

import (
	"time"

	"github.com/google/uuid"

	"transportscolaire_backend/internals/features/finance/expenses/model"
)

/* =============== REQUESTS =============== */

type CreateExpenseRequest struct {
	Date        string  `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Type        string  `json:"type"        validate:"required,oneof=carburant entretien lavage peage autre"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,min=3"`
}

type UpdateExpenseRequest struct {
	Date        *string  `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Type        *string  `json:"type"        validate:"omitempty,oneof=carburant entretien lavage peage autre"`
	Amount      *float64 `json:"amount"      validate:"omitempty,gt=0"`
	Description *string  `json:"description" validate:"omitempty,min=3"`
}

// ApplyTo reporte les champs fournis sur le modele.
func (r UpdateExpenseRequest) ApplyTo(m *model.BusExpenseModel) {
	if r.Date != nil {
		m.BusExpenseDate = *r.Date
	}
	if r.Type != nil {
		m.BusExpenseType = *r.Type
	}
	if r.Amount != nil {
		m.BusExpenseAmount = *r.Amount
	}
	if r.Description != nil {
		m.BusExpenseDescription = *r.Description
	}
}

/* =============== RESPONSES =============== */

type ExpenseResponse struct {
	BusExpenseID uuid.UUID `json:"bus_expense_id"`
	BusID        uuid.UUID `json:"bus_id"`
	DriverID     uuid.UUID `json:"driver_id"`
	Date         string    `json:"date"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`

	BusName string `json:"bus_name,omitempty"`
}

func FromModel(m model.BusExpenseModel) ExpenseResponse {
	return ExpenseResponse{
		BusExpenseID: m.BusExpenseID,
		BusID:        m.BusExpenseBusID,
		DriverID:     m.BusExpenseDriverID,
		Date:         m.BusExpenseDate,
		Type:         m.BusExpenseType,
		Amount:       m.BusExpenseAmount,
		Description:  m.BusExpenseDescription,
		CreatedAt:    m.BusExpenseCreatedAt,
	}
}

func FromModels(rows []model.BusExpenseModel) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
