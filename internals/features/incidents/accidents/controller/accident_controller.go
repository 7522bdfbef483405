package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/incidents/accidents/dto"
	"transportscolaire_backend/internals/features/incidents/accidents/model"
	"transportscolaire_backend/internals/features/incidents/accidents/service"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type AccidentController struct {
	DB *gorm.DB
}

func NewAccidentController(db *gorm.DB) *AccidentController {
	return &AccidentController{DB: db}
}

/* ======================= CHAUFFEUR ======================= */

// POST /api/d/accidents
func (h *AccidentController) Report(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ReportAccidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.Report(h.DB, driverID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] accident déclaré: chauffeur=%s total=%d", driverID, result.AccidentCount)
	return helper.JsonCreated(c, "Accident déclaré", result)
}

// GET /api/d/accidents
func (h *AccidentController) ListMine(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.AccidentModel
	if err := h.DB.
		Where("accident_driver_id = ?", driverID).
		Order("accident_date DESC, accident_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des accidents")
	}
	return helper.Success(c, "Accidents récupérés", dto.FromModels(rows))
}

/* ======================= ADMIN ======================= */

// POST /api/a/accidents
// Saisie d'un accident par l'administration : le chauffeur et le bus
// viennent du payload.
func (h *AccidentController) CreateByAdmin(c *fiber.Ctx) error {
	var req dto.RecordAccidentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.RecordByAdmin(h.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] accident saisi par l'administration: chauffeur=%s total=%d", req.DriverID, result.AccidentCount)
	return helper.JsonCreated(c, "Accident déclaré avec succès", result)
}

// GET /api/a/accidents
// Liste complete, enrichie du nom du chauffeur et du bus.
func (h *AccidentController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 500)

	var rows []model.AccidentModel
	if err := h.DB.
		Order("accident_date DESC, accident_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des accidents")
	}

	driverIDs := make([]uuid.UUID, 0, len(rows))
	busIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		driverIDs = append(driverIDs, r.AccidentDriverID)
		busIDs = append(busIDs, r.AccidentBusID)
	}

	type name struct{ First, Last string }
	driverNames := map[uuid.UUID]name{}
	if len(driverIDs) > 0 {
		var drivers []driverModel.DriverModel
		if err := h.DB.Where("driver_id IN ?", driverIDs).Find(&drivers).Error; err == nil {
			userIDs := make([]uuid.UUID, 0, len(drivers))
			byUser := map[uuid.UUID]uuid.UUID{}
			for _, d := range drivers {
				userIDs = append(userIDs, d.DriverUserID)
				byUser[d.DriverUserID] = d.DriverID
			}
			var users []userModel.UserModel
			if err := h.DB.Where("user_id IN ?", userIDs).Find(&users).Error; err == nil {
				for _, u := range users {
					driverNames[byUser[u.UserID]] = name{u.UserFirstName, u.UserLastName}
				}
			}
		}
	}

	busNames := map[uuid.UUID]string{}
	if len(busIDs) > 0 {
		var buses []busModel.BusModel
		if err := h.DB.Where("bus_id IN ?", busIDs).Find(&buses).Error; err == nil {
			for _, b := range buses {
				busNames[b.BusID] = b.BusCode
			}
		}
	}

	resps := make([]dto.AccidentResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.FromModel(r)
		n := driverNames[r.AccidentDriverID]
		resp.DriverFirstName = n.First
		resp.DriverLastName = n.Last
		resp.BusName = busNames[r.AccidentBusID]
		resps = append(resps, resp)
	}
	return helper.Success(c, "Accidents récupérés", resps)
}
