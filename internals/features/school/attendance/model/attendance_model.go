package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel : une ligne par (eleve, bus, date, periode).
// Un re-marquage met a jour la ligne existante, jamais de doublon.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_mark" json:"attendance_student_id"`
	AttendanceBusID     uuid.UUID `gorm:"column:attendance_bus_id;type:uuid;not null;uniqueIndex:uq_attendance_mark" json:"attendance_bus_id"`
	AttendanceDate      string    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_mark" json:"attendance_date"` // YYYY-MM-DD
	AttendancePeriod    string    `gorm:"column:attendance_period;type:varchar(10);not null;uniqueIndex:uq_attendance_mark" json:"attendance_period"` // morning|evening
	AttendanceStatus    string    `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`                               // present|absent
	AttendanceBusGroup  string    `gorm:"column:attendance_bus_group;type:varchar(1);not null" json:"attendance_bus_group"`
	AttendanceMarkedBy  uuid.UUID `gorm:"column:attendance_marked_by;type:uuid;not null" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendance" }
