package dto

import (
	"time"

	"github.com/google/uuid"

	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type CreateDriverRequest struct {
	FirstName     string  `json:"first_name"     validate:"required,min=2,max=100"`
	LastName      string  `json:"last_name"      validate:"required,min=2,max=100"`
	Cin           string  `json:"cin"            validate:"required,min=4,max=30"`
	Phone         string  `json:"phone"          validate:"required,min=8,max=30"`
	Email         string  `json:"email"          validate:"required,email"`
	Password      string  `json:"password"       validate:"required,min=6"`
	LicenseNumber string  `json:"license_number" validate:"required,max=50"`
	Age           int     `json:"age"            validate:"required,min=21,max=65"`
	Salary        float64 `json:"salary"         validate:"required,gt=0"`
}

type UpdateDriverRequest struct {
	FirstName     *string  `json:"first_name"     validate:"omitempty,min=2,max=100"`
	LastName      *string  `json:"last_name"      validate:"omitempty,min=2,max=100"`
	Phone         *string  `json:"phone"          validate:"omitempty,min=8,max=30"`
	Email         *string  `json:"email"          validate:"omitempty,email"`
	LicenseNumber *string  `json:"license_number" validate:"omitempty,max=50"`
	Age           *int     `json:"age"            validate:"omitempty,min=21,max=65"`
	Salary        *float64 `json:"salary"         validate:"omitempty,gt=0"`
	Status        *string  `json:"status"         validate:"omitempty,oneof=active suspended fired"`
}

/* =============== RESPONSES =============== */

// DriverResponse : profil fusionne users + drivers.
type DriverResponse struct {
	DriverID      uuid.UUID `json:"driver_id"`
	UserID        uuid.UUID `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Cin           string    `json:"cin"`
	LicenseNumber string    `json:"license_number"`
	Age           int       `json:"age"`
	Salary        float64   `json:"salary"`
	AccidentCount int       `json:"accident_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`

	BusName string `json:"bus_name,omitempty"`
}

func FromModels(driver driverModel.DriverModel, user userModel.UserModel) DriverResponse {
	return DriverResponse{
		DriverID:      driver.DriverID,
		UserID:        user.UserID,
		FirstName:     user.UserFirstName,
		LastName:      user.UserLastName,
		Email:         user.UserEmail,
		Phone:         user.UserPhone,
		Cin:           user.UserCin,
		LicenseNumber: driver.DriverLicenseNumber,
		Age:           driver.DriverAge,
		Salary:        driver.DriverSalary,
		AccidentCount: driver.DriverAccidentCount,
		Status:        user.UserStatus,
		CreatedAt:     driver.DriverCreatedAt,
	}
}
