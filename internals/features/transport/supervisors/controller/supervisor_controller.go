package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	"transportscolaire_backend/internals/features/transport/supervisors/dto"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	"transportscolaire_backend/internals/features/transport/supervisors/service"
	userModel "transportscolaire_backend/internals/features/users/user/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type SupervisorController struct {
	DB *gorm.DB
}

func NewSupervisorController(db *gorm.DB) *SupervisorController {
	return &SupervisorController{DB: db}
}

func (h *SupervisorController) buildResponse(sup supervisorModel.SupervisorModel) (*dto.SupervisorResponse, error) {
	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", sup.SupervisorUserID).Error; err != nil {
		return nil, err
	}
	resp := dto.FromModels(sup, user)

	var bus busModel.BusModel
	if err := h.DB.First(&bus, "bus_supervisor_id = ?", sup.SupervisorID).Error; err == nil {
		resp.BusName = bus.BusCode
	}
	return &resp, nil
}

/* ======================= ADMIN ======================= */

// POST /api/a/supervisors
func (h *SupervisorController) Create(c *fiber.Ctx) error {
	var req dto.CreateSupervisorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := service.Create(h.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] superviseur créé: %s", resp.SupervisorID)
	return helper.JsonCreated(c, "Superviseur créé", resp)
}

// GET /api/a/supervisors
func (h *SupervisorController) List(c *fiber.Ctx) error {
	var sups []supervisorModel.SupervisorModel
	if err := h.DB.Order("supervisor_created_at DESC").Find(&sups).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des superviseurs")
	}

	resps := make([]dto.SupervisorResponse, 0, len(sups))
	for _, s := range sups {
		resp, err := h.buildResponse(s)
		if err != nil {
			continue
		}
		resps = append(resps, *resp)
	}
	return helper.Success(c, "Superviseurs récupérés", resps)
}

// GET /api/a/supervisors/:id
func (h *SupervisorController) GetByID(c *fiber.Ctx) error {
	supervisorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du superviseur invalide")
	}

	var sup supervisorModel.SupervisorModel
	if err := h.DB.First(&sup, "supervisor_id = ?", supervisorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Superviseur non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du superviseur")
	}

	resp, err := h.buildResponse(sup)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du superviseur")
	}
	return helper.Success(c, "Superviseur récupéré", resp)
}

// PUT /api/a/supervisors/:id
func (h *SupervisorController) Update(c *fiber.Ctx) error {
	supervisorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du superviseur invalide")
	}

	var req dto.UpdateSupervisorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := service.Update(h.DB, supervisorID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Superviseur mis à jour", resp)
}

// DELETE /api/a/supervisors/:id
// Refuse si le superviseur encadre encore un bus.
func (h *SupervisorController) Delete(c *fiber.Ctx) error {
	supervisorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du superviseur invalide")
	}

	var sup supervisorModel.SupervisorModel
	if err := h.DB.First(&sup, "supervisor_id = ?", supervisorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Superviseur non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du superviseur")
	}

	var assigned int64
	if err := h.DB.Model(&busModel.BusModel{}).
		Where("bus_supervisor_id = ?", supervisorID).
		Count(&assigned).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du superviseur")
	}
	if assigned > 0 {
		return helper.Error(c, fiber.StatusConflict, "Impossible de supprimer un superviseur affecté à un bus")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&sup).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserModel{}, "user_id = ?", sup.SupervisorUserID).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du superviseur")
	}
	return helper.Success(c, "Superviseur supprimé", nil)
}

/* ======================= SUPERVISEUR ======================= */

// GET /api/s/profile
func (h *SupervisorController) Profile(c *fiber.Ctx) error {
	supervisorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var sup supervisorModel.SupervisorModel
	if err := h.DB.First(&sup, "supervisor_id = ?", supervisorID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil non trouvé")
	}

	resp, err := h.buildResponse(sup)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du profil")
	}
	return helper.Success(c, "Profil récupéré", resp)
}
