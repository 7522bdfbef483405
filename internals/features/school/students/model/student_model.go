package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel. Invariant : student_payment_status = 'paid' implique
// bus, groupe et trajet non nuls (poses ensemble lors de la validation
// du paiement). student_absence_count est monotone, incremente seulement
// lors d'un passage a 'absent'.
type StudentModel struct {
	StudentID               uuid.UUID  `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentTutorID          uuid.UUID  `gorm:"column:student_tutor_id;type:uuid;not null;index" json:"student_tutor_id"`
	StudentFirstName        string     `gorm:"column:student_first_name;type:varchar(100);not null" json:"student_first_name"`
	StudentLastName         string     `gorm:"column:student_last_name;type:varchar(100);not null" json:"student_last_name"`
	StudentClass            string     `gorm:"column:student_class;type:varchar(30);not null" json:"student_class"`
	StudentAge              int        `gorm:"column:student_age;not null" json:"student_age"`
	StudentGender           string     `gorm:"column:student_gender;type:varchar(10);not null" json:"student_gender"`
	StudentZone             string     `gorm:"column:student_zone;type:varchar(100);not null" json:"student_zone"`
	StudentParentRelation   string     `gorm:"column:student_parent_relation;type:varchar(30);not null" json:"student_parent_relation"`
	StudentTransportType    string     `gorm:"column:student_transport_type;type:varchar(30);not null" json:"student_transport_type"`
	StudentSubscriptionType string     `gorm:"column:student_subscription_type;type:varchar(20);not null" json:"student_subscription_type"` // mensuel|annuel
	StudentStatus           string     `gorm:"column:student_status;type:varchar(20);not null;default:pending;index" json:"student_status"` // pending|approved|rejected
	StudentPaymentStatus    string     `gorm:"column:student_payment_status;type:varchar(20);not null;default:unpaid" json:"student_payment_status"`
	StudentAbsenceCount     int        `gorm:"column:student_absence_count;not null;default:0" json:"student_absence_count"`
	StudentBusID            *uuid.UUID `gorm:"column:student_bus_id;type:uuid;index" json:"student_bus_id,omitempty"`
	StudentBusGroup         *string    `gorm:"column:student_bus_group;type:varchar(1)" json:"student_bus_group,omitempty"` // A|B
	StudentRouteID          *uuid.UUID `gorm:"column:student_route_id;type:uuid" json:"student_route_id,omitempty"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
