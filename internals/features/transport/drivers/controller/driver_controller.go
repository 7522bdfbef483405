package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	"transportscolaire_backend/internals/features/transport/drivers/dto"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	"transportscolaire_backend/internals/features/transport/drivers/service"
	userModel "transportscolaire_backend/internals/features/users/user/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type DriverController struct {
	DB *gorm.DB
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{DB: db}
}

func (h *DriverController) buildResponse(driver driverModel.DriverModel) (*dto.DriverResponse, error) {
	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", driver.DriverUserID).Error; err != nil {
		return nil, err
	}
	resp := dto.FromModels(driver, user)

	var bus busModel.BusModel
	if err := h.DB.First(&bus, "bus_driver_id = ?", driver.DriverID).Error; err == nil {
		resp.BusName = bus.BusCode
	}
	return &resp, nil
}

/* ======================= ADMIN ======================= */

// POST /api/a/drivers
func (h *DriverController) Create(c *fiber.Ctx) error {
	var req dto.CreateDriverRequest
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

	log.Printf("[INFO] chauffeur créé: %s", resp.DriverID)
	return helper.JsonCreated(c, "Chauffeur créé", resp)
}

// GET /api/a/drivers
func (h *DriverController) List(c *fiber.Ctx) error {
	var drivers []driverModel.DriverModel
	if err := h.DB.Order("driver_created_at DESC").Find(&drivers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des chauffeurs")
	}

	resps := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		resp, err := h.buildResponse(d)
		if err != nil {
			continue
		}
		resps = append(resps, *resp)
	}
	return helper.Success(c, "Chauffeurs récupérés", resps)
}

// GET /api/a/drivers/:id
func (h *DriverController) GetByID(c *fiber.Ctx) error {
	driverID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du chauffeur invalide")
	}

	var driver driverModel.DriverModel
	if err := h.DB.First(&driver, "driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Chauffeur non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du chauffeur")
	}

	resp, err := h.buildResponse(driver)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du chauffeur")
	}
	return helper.Success(c, "Chauffeur récupéré", resp)
}

// PUT /api/a/drivers/:id
func (h *DriverController) Update(c *fiber.Ctx) error {
	driverID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du chauffeur invalide")
	}

	var req dto.UpdateDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := service.Update(h.DB, driverID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Chauffeur mis à jour", resp)
}

// DELETE /api/a/drivers/:id
// Refuse si le chauffeur conduit encore un bus.
func (h *DriverController) Delete(c *fiber.Ctx) error {
	driverID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du chauffeur invalide")
	}

	var driver driverModel.DriverModel
	if err := h.DB.First(&driver, "driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Chauffeur non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du chauffeur")
	}

	var assigned int64
	if err := h.DB.Model(&busModel.BusModel{}).
		Where("bus_driver_id = ?", driverID).
		Count(&assigned).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du chauffeur")
	}
	if assigned > 0 {
		return helper.Error(c, fiber.StatusConflict, "Impossible de supprimer un chauffeur affecté à un bus")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&driver).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserModel{}, "user_id = ?", driver.DriverUserID).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du chauffeur")
	}
	return helper.Success(c, "Chauffeur supprimé", nil)
}

/* ======================= CHAUFFEUR ======================= */

// GET /api/d/profile
func (h *DriverController) Profile(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var driver driverModel.DriverModel
	if err := h.DB.First(&driver, "driver_id = ?", driverID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil non trouvé")
	}

	resp, err := h.buildResponse(driver)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du profil")
	}
	return helper.Success(c, "Profil récupéré", resp)
}
