package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	"transportscolaire_backend/internals/features/transport/routes/dto"
	"transportscolaire_backend/internals/features/transport/routes/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type RouteController struct {
	DB *gorm.DB
}

func NewRouteController(db *gorm.DB) *RouteController {
	return &RouteController{DB: db}
}

// POST /api/a/routes
func (h *RouteController) Create(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	route := req.ToModel()
	if err := h.DB.Create(route).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la création du trajet")
	}
	return helper.JsonCreated(c, "Trajet créé", dto.FromModel(*route))
}

// GET /api/a/routes
func (h *RouteController) List(c *fiber.Ctx) error {
	var rows []model.RouteModel
	if err := h.DB.Order("route_code ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des trajets")
	}
	return helper.Success(c, "Trajets récupérés", dto.FromModels(rows))
}

// GET /api/a/routes/:id
func (h *RouteController) GetByID(c *fiber.Ctx) error {
	routeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du trajet invalide")
	}

	var route model.RouteModel
	if err := h.DB.First(&route, "route_id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Trajet non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération du trajet")
	}
	return helper.Success(c, "Trajet récupéré", dto.FromModel(route))
}

// PUT /api/a/routes/:id
func (h *RouteController) Update(c *fiber.Ctx) error {
	routeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du trajet invalide")
	}

	var route model.RouteModel
	if err := h.DB.First(&route, "route_id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Trajet non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la mise à jour du trajet")
	}

	var req dto.UpdateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&route)
	if err := h.DB.Save(&route).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la mise à jour du trajet")
	}
	return helper.Success(c, "Trajet mis à jour", dto.FromModel(route))
}

// DELETE /api/a/routes/:id
// Refuse si un bus utilise encore ce trajet.
func (h *RouteController) Delete(c *fiber.Ctx) error {
	routeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du trajet invalide")
	}

	var route model.RouteModel
	if err := h.DB.First(&route, "route_id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Trajet non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du trajet")
	}

	var used int64
	if err := h.DB.Model(&busModel.BusModel{}).
		Where("bus_route_id = ?", routeID).
		Count(&used).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du trajet")
	}
	if used > 0 {
		return helper.Error(c, fiber.StatusConflict, "Impossible de supprimer un trajet affecté à un bus")
	}

	if err := h.DB.Delete(&route).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression du trajet")
	}
	return helper.Success(c, "Trajet supprimé", nil)
}
