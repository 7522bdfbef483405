package model

import (
	"time"

	"github.com/google/uuid"
)

// BusExpenseModel : depenses quotidiennes du bus saisies par le chauffeur.
type BusExpenseModel struct {
	BusExpenseID          uuid.UUID `gorm:"column:bus_expense_id;type:uuid;primaryKey" json:"bus_expense_id"`
	BusExpenseBusID       uuid.UUID `gorm:"column:bus_expense_bus_id;type:uuid;not null;index" json:"bus_expense_bus_id"`
	BusExpenseDriverID    uuid.UUID `gorm:"column:bus_expense_driver_id;type:uuid;not null;index" json:"bus_expense_driver_id"`
	BusExpenseDate        string    `gorm:"column:bus_expense_date;type:date;not null" json:"bus_expense_date"` // YYYY-MM-DD
	BusExpenseType        string    `gorm:"column:bus_expense_type;type:varchar(30);not null" json:"bus_expense_type"`
	BusExpenseAmount      float64   `gorm:"column:bus_expense_amount;type:numeric(10,2);not null" json:"bus_expense_amount"`
	BusExpenseDescription string    `gorm:"column:bus_expense_description;type:text;not null" json:"bus_expense_description"`

	BusExpenseCreatedAt time.Time `gorm:"column:bus_expense_created_at;autoCreateTime" json:"bus_expense_created_at"`
}

func (BusExpenseModel) TableName() string { return "bus_expenses" }
