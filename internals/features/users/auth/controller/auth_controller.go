package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/users/auth/dto"
	"transportscolaire_backend/internals/features/users/auth/service"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginFn func(*gorm.DB, dto.LoginRequest) (*dto.LoginResponse, error)

func (h *AuthController) login(c *fiber.Ctx, fn loginFn, roleLabel string) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := fn(h.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Cookie HttpOnly en plus du token dans le corps, pour les clients
	// navigateur.
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	log.Printf("[INFO] connexion %s réussie: %s", roleLabel, res.ID)
	return helper.Success(c, "Connexion réussie", res)
}

// POST /api/auth/login/admin
func (h *AuthController) LoginAdmin(c *fiber.Ctx) error {
	return h.login(c, service.LoginAdmin, "admin")
}

// POST /api/auth/login/tutor
func (h *AuthController) LoginTutor(c *fiber.Ctx) error {
	return h.login(c, service.LoginTutor, "tuteur")
}

// POST /api/auth/login/driver
func (h *AuthController) LoginDriver(c *fiber.Ctx) error {
	return h.login(c, service.LoginDriver, "chauffeur")
}

// POST /api/auth/login/supervisor
func (h *AuthController) LoginSupervisor(c *fiber.Ctx) error {
	return h.login(c, service.LoginSupervisor, "superviseur")
}

// POST /api/auth/register/tutor
func (h *AuthController) RegisterTutor(c *fiber.Ctx) error {
	var req dto.RegisterTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := service.RegisterTutor(h.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] nouveau tuteur inscrit: %s", res.ID)
	return helper.JsonCreated(c, "Inscription réussie. Vous pouvez maintenant vous connecter.", res)
}

// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		MaxAge:   -1,
		Path:     "/",
	})
	return helper.Success(c, "Déconnexion réussie", nil)
}
