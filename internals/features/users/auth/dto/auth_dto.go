package dto

import (
	"github.com/google/uuid"
)

/* =============== REQUESTS =============== */

// LoginRequest est commun a tous les roles. L'identifiant accepte varie
// selon le role : username (admin), email/telephone/CIN (tuteur,
// chauffeur), email/telephone (superviseur).
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type RegisterTutorRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name"  validate:"required,min=2,max=100"`
	Cin       string `json:"cin"        validate:"required,min=4,max=30"`
	Phone     string `json:"phone"      validate:"required,min=8,max=30"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	Address   string `json:"address"    validate:"required"`
}

/* =============== RESPONSES =============== */

// LoginResponse : profil plat (jamais le hash) + token d'acces.
// Le champ Type sert de discriminateur de role au front.
type LoginResponse struct {
	ID        uuid.UUID `json:"id"`      // id de la ligne d'extension du role
	UserID    uuid.UUID `json:"user_id"` // id de la ligne users
	Type      string    `json:"type"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Cin       string    `json:"cin,omitempty"`
	Username  string    `json:"username,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Status    string    `json:"status"`

	// Champs specifiques au role
	Address       string  `json:"address,omitempty"`        // tutor
	LicenseNumber string  `json:"license_number,omitempty"` // driver
	Age           int     `json:"age,omitempty"`            // driver/supervisor
	Salary        float64 `json:"salary,omitempty"`         // driver/supervisor
	AccidentCount int     `json:"accident_count,omitempty"` // driver

	AccessToken string `json:"access_token"`
}
