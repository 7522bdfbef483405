package dto

import (
	"time"

	"github.com/google/uuid"

	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type CreateSupervisorRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string  `json:"last_name"  validate:"required,min=2,max=100"`
	Cin       string  `json:"cin"        validate:"required,min=4,max=30"`
	Phone     string  `json:"phone"      validate:"required,min=8,max=30"`
	Email     string  `json:"email"      validate:"required,email"`
	Password  string  `json:"password"   validate:"required,min=6"`
	Age       int     `json:"age"        validate:"required,min=18,max=65"`
	Salary    float64 `json:"salary"     validate:"required,gt=0"`
}

type UpdateSupervisorRequest struct {
	FirstName *string  `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName  *string  `json:"last_name"  validate:"omitempty,min=2,max=100"`
	Phone     *string  `json:"phone"      validate:"omitempty,min=8,max=30"`
	Email     *string  `json:"email"      validate:"omitempty,email"`
	Age       *int     `json:"age"        validate:"omitempty,min=18,max=65"`
	Salary    *float64 `json:"salary"     validate:"omitempty,gt=0"`
	Status    *string  `json:"status"     validate:"omitempty,oneof=active suspended fired"`
}

/* =============== RESPONSES =============== */

type SupervisorResponse struct {
	SupervisorID uuid.UUID `json:"supervisor_id"`
	UserID       uuid.UUID `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Cin          string    `json:"cin"`
	Age          int       `json:"age"`
	Salary       float64   `json:"salary"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`

	BusName string `json:"bus_name,omitempty"`
}

func FromModels(sup supervisorModel.SupervisorModel, user userModel.UserModel) SupervisorResponse {
	return SupervisorResponse{
		SupervisorID: sup.SupervisorID,
		UserID:       user.UserID,
		FirstName:    user.UserFirstName,
		LastName:     user.UserLastName,
		Email:        user.UserEmail,
		Phone:        user.UserPhone,
		Cin:          user.UserCin,
		Age:          sup.SupervisorAge,
		Salary:       sup.SupervisorSalary,
		Status:       user.UserStatus,
		CreatedAt:    sup.SupervisorCreatedAt,
	}
}
