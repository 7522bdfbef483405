package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "transportscolaire_backend/internals/features/school/students/model"
	"transportscolaire_backend/internals/features/transport/buses/dto"
	"transportscolaire_backend/internals/features/transport/buses/model"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	routeModel "transportscolaire_backend/internals/features/transport/routes/model"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type BusController struct {
	DB *gorm.DB
}

func NewBusController(db *gorm.DB) *BusController {
	return &BusController{DB: db}
}

// checkAssignments verifie que chauffeur, superviseur et trajet
// existent et ne sont pas deja tenus par un autre bus. excludeBusID
// exclut le bus en cours de modification.
func (h *BusController) checkAssignments(driverID, supervisorID, routeID *uuid.UUID, excludeBusID *uuid.UUID) error {
	taken := func(column string, id uuid.UUID) (bool, error) {
		q := h.DB.Model(&model.BusModel{}).Where(column+" = ?", id)
		if excludeBusID != nil {
			q = q.Where("bus_id <> ?", *excludeBusID)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return false, err
		}
		return n > 0, nil
	}

	if driverID != nil {
		var d driverModel.DriverModel
		if err := h.DB.First(&d, "driver_id = ?", *driverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chauffeur non trouvé")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la vérification du chauffeur")
		}
		busy, err := taken("bus_driver_id", *driverID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la vérification du chauffeur")
		}
		if busy {
			return fiber.NewError(fiber.StatusConflict, "Ce chauffeur est déjà affecté à un autre bus")
		}
	}

	if supervisorID != nil {
		var s supervisorModel.SupervisorModel
		if err := h.DB.First(&s, "supervisor_id = ?", *supervisorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Superviseur non trouvé")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la vérification du superviseur")
		}
		busy, err := taken("bus_supervisor_id", *supervisorID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la vérification du superviseur")
		}
		if busy {
			return fiber.NewError(fiber.StatusConflict, "Ce superviseur est déjà affecté à un autre bus")
		}
	}

	if routeID != nil {
		var rt routeModel.RouteModel
		if err := h.DB.First(&rt, "route_id = ?", *routeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Trajet non trouvé")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la vérification du trajet")
		}
		busy, err := taken("bus_route_id", *routeID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la vérification du trajet")
		}
		if busy {
			return fiber.NewError(fiber.StatusConflict, "Ce trajet est déjà affecté à un autre bus")
		}
	}

	return nil
}

// POST /api/a/buses
func (h *BusController) Create(c *fiber.Ctx) error {
	var req dto.CreateBusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.checkAssignments(req.DriverID, req.SupervisorID, req.RouteID, nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	bus := req.ToModel()
	if err := h.DB.Create(bus).Error; err != nil {
		log.Printf("[ERROR] creation bus: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la création du bus")
	}

	return helper.JsonCreated(c, "Bus créé", dto.FromModel(*bus))
}

// GET /api/a/buses
func (h *BusController) List(c *fiber.Ctx) error {
	var rows []model.BusModel
	if err := h.DB.Order("bus_code ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des bus")
	}

	resps := dto.FromModels(rows)
	for i := range resps {
		var n int64
		if err := h.DB.Model(&studentModel.StudentModel{}).
			Where("student_bus_id = ? AND student_payment_status = ?", resps[i].BusID, "paid").
			Count(&n).Error; err == nil {
			resps[i].StudentCount = n
		}
	}
	return helper.Success(c, "Bus récupérés", resps)
}

// GET /api/a/buses/:id
func (h *BusController) GetByID(c *fiber.Ctx) error {
	busID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du bus invalide")
	}

	var bus model.BusModel
	if err := h.DB.First(&bus, "bus_id = ?", busID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bus non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du bus")
	}

	resp := dto.FromModel(bus)
	h.DB.Model(&studentModel.StudentModel{}).
		Where("student_bus_id = ? AND student_payment_status = ?", bus.BusID, "paid").
		Count(&resp.StudentCount)
	return helper.Success(c, "Bus récupéré", resp)
}

// PUT /api/a/buses/:id
// Mise a jour partielle : seuls les champs presents dans le payload
// changent.
func (h *BusController) Update(c *fiber.Ctx) error {
	busID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du bus invalide")
	}

	var bus model.BusModel
	if err := h.DB.First(&bus, "bus_id = ?", busID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bus non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la mise à jour du bus")
	}

	var req dto.UpdateBusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.checkAssignments(req.DriverID, req.SupervisorID, req.RouteID, &busID); err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Code != nil {
		updates["bus_code"] = *req.Code
	}
	if req.Matricule != nil {
		updates["bus_matricule"] = *req.Matricule
	}
	if req.Capacity != nil {
		updates["bus_capacity"] = *req.Capacity
	}
	if req.DriverID != nil {
		if *req.DriverID == uuid.Nil {
			updates["bus_driver_id"] = nil
		} else {
			updates["bus_driver_id"] = *req.DriverID
		}
	}
	if req.SupervisorID != nil {
		if *req.SupervisorID == uuid.Nil {
			updates["bus_supervisor_id"] = nil
		} else {
			updates["bus_supervisor_id"] = *req.SupervisorID
		}
	}
	if req.RouteID != nil {
		if *req.RouteID == uuid.Nil {
			updates["bus_route_id"] = nil
		} else {
			updates["bus_route_id"] = *req.RouteID
		}
	}
	if req.Status != nil {
		updates["bus_status"] = *req.Status
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Aucun champ à mettre à jour")
	}

	if err := h.DB.Model(&bus).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la mise à jour du bus")
	}

	if err := h.DB.First(&bus, "bus_id = ?", busID).Error; err == nil {
		return helper.Success(c, "Bus mis à jour", dto.FromModel(bus))
	}
	return helper.Success(c, "Bus mis à jour", nil)
}

// DELETE /api/a/buses/:id
// Refuse tant que des eleves payes y sont affectes.
func (h *BusController) Delete(c *fiber.Ctx) error {
	busID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du bus invalide")
	}

	var bus model.BusModel
	if err := h.DB.First(&bus, "bus_id = ?", busID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bus non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du bus")
	}

	var assigned int64
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_bus_id = ?", busID).
		Count(&assigned).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du bus")
	}
	if assigned > 0 {
		return helper.Error(c, fiber.StatusConflict, "Impossible de supprimer un bus avec des élèves affectés")
	}

	if err := h.DB.Delete(&bus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du bus")
	}
	return helper.Success(c, "Bus supprimé", nil)
}
