package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel porte les champs communs a tous les comptes. Chaque role a
// une table d'extension 1:1 (admins, tutors, drivers, supervisors).
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserType      string    `gorm:"column:user_type;type:varchar(20);not null;index" json:"user_type"` // admin|tutor|driver|supervisor
	UserEmail     string    `gorm:"column:user_email;type:varchar(150);index" json:"user_email"`
	UserPhone     string    `gorm:"column:user_phone;type:varchar(30);index" json:"user_phone"`
	UserCin       string    `gorm:"column:user_cin;type:varchar(30);index" json:"user_cin"`
	UserPassword  string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserFirstName string    `gorm:"column:user_first_name;type:varchar(100);not null" json:"user_first_name"`
	UserLastName  string    `gorm:"column:user_last_name;type:varchar(100);not null" json:"user_last_name"`
	UserStatus    string    `gorm:"column:user_status;type:varchar(20);not null;default:active" json:"user_status"` // active|suspended|fired

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

type AdminModel struct {
	AdminID       uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminUserID   uuid.UUID `gorm:"column:admin_user_id;type:uuid;not null;uniqueIndex" json:"admin_user_id"`
	AdminUsername string    `gorm:"column:admin_username;type:varchar(100);not null;uniqueIndex" json:"admin_username"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string { return "admins" }

type TutorModel struct {
	TutorID      uuid.UUID `gorm:"column:tutor_id;type:uuid;primaryKey" json:"tutor_id"`
	TutorUserID  uuid.UUID `gorm:"column:tutor_user_id;type:uuid;not null;uniqueIndex" json:"tutor_user_id"`
	TutorAddress string    `gorm:"column:tutor_address;type:text" json:"tutor_address"`

	TutorCreatedAt time.Time `gorm:"column:tutor_created_at;autoCreateTime" json:"tutor_created_at"`
}

func (TutorModel) TableName() string { return "tutors" }
