package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/school/registrations/service"
	studentDTO "transportscolaire_backend/internals/features/school/students/dto"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	helper "transportscolaire_backend/internals/helpers"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// GET /api/a/registrations
// Inscriptions en attente de decision, les plus anciennes d'abord.
func (h *RegistrationController) ListPending(c *fiber.Ctx) error {
	var rows []studentModel.StudentModel
	if err := h.DB.
		Where("student_status = ?", "pending").
		Order("student_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des inscriptions")
	}
	return helper.Success(c, "Inscriptions en attente récupérées", studentDTO.FromModels(rows))
}

// PUT /api/a/registrations/:id/approve
func (h *RegistrationController) Approve(c *fiber.Ctx) error {
	adminID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant de l'élève invalide")
	}

	result, err := service.Approve(h.DB, studentID, adminID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] inscription validée: eleve=%s remise=%d%%", studentID, result.Discount)
	return helper.Success(c, "Inscription validée", result)
}

// PUT /api/a/registrations/:id/reject
func (h *RegistrationController) Reject(c *fiber.Ctx) error {
	adminID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant de l'élève invalide")
	}

	student, err := service.Reject(h.DB, studentID, adminID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] inscription refusée: eleve=%s", studentID)
	return helper.Success(c, "Inscription refusée", studentDTO.FromModel(*student))
}
