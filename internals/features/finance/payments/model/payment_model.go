package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel. Invariant :
// payment_final_amount = payment_amount - payment_discount_amount.
type PaymentModel struct {
	PaymentID                 uuid.UUID  `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentStudentID          uuid.UUID  `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentTutorID            uuid.UUID  `gorm:"column:payment_tutor_id;type:uuid;not null;index" json:"payment_tutor_id"`
	PaymentAmount             float64    `gorm:"column:payment_amount;type:numeric(10,2);not null" json:"payment_amount"`
	PaymentDiscountPercentage int        `gorm:"column:payment_discount_percentage;not null;default:0" json:"payment_discount_percentage"`
	PaymentDiscountAmount     float64    `gorm:"column:payment_discount_amount;type:numeric(10,2);not null;default:0" json:"payment_discount_amount"`
	PaymentFinalAmount        float64    `gorm:"column:payment_final_amount;type:numeric(10,2);not null" json:"payment_final_amount"`
	PaymentTransportType      string     `gorm:"column:payment_transport_type;type:varchar(30);not null" json:"payment_transport_type"`
	PaymentSubscriptionType   string     `gorm:"column:payment_subscription_type;type:varchar(20);not null" json:"payment_subscription_type"`
	PaymentStatus             string     `gorm:"column:payment_status;type:varchar(20);not null;default:pending;index" json:"payment_status"` // pending|paid
	PaymentDate               *time.Time `gorm:"column:payment_date;type:date" json:"payment_date,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
