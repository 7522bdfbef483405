package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/finance/raises/dto"
	"transportscolaire_backend/internals/features/finance/raises/model"
	"transportscolaire_backend/internals/features/finance/raises/service"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type RaiseController struct {
	DB *gorm.DB
}

func NewRaiseController(db *gorm.DB) *RaiseController {
	return &RaiseController{DB: db}
}

/* ======================= CHAUFFEUR / SUPERVISEUR ======================= */

// POST /api/d/raises et /api/s/raises
func (h *RaiseController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateRaiseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	raise, err := service.Create(h.DB, actorID, role, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] demande d'augmentation déposée: %s (%s)", actorID, role)
	return helper.JsonCreated(c, "Demande d'augmentation envoyée", dto.FromModel(*raise))
}

// GET /api/d/raises et /api/s/raises
func (h *RaiseController) ListMine(c *fiber.Ctx) error {
	actorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.RaiseRequestModel
	if err := h.DB.
		Where("raise_request_requester_id = ?", actorID).
		Order("raise_request_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des demandes")
	}
	return helper.Success(c, "Demandes récupérées", dto.FromModels(rows))
}

/* ======================= ADMIN ======================= */

// GET /api/a/raises?status=pending
func (h *RaiseController) ListAll(c *fiber.Ctx) error {
	q := h.DB.Model(&model.RaiseRequestModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("raise_request_status = ?", status)
	}

	var rows []model.RaiseRequestModel
	if err := q.
		Order("raise_request_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des demandes")
	}

	resps := dto.FromModels(rows)
	h.attachRequesterNames(resps)
	return helper.Success(c, "Demandes récupérées", resps)
}

// PUT /api/a/raises/:id/resolve
func (h *RaiseController) Resolve(c *fiber.Ctx) error {
	adminID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	raiseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant de la demande invalide")
	}

	var req dto.ResolveRaiseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	raise, err := service.Resolve(h.DB, raiseID, adminID, req.Decision)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] demande d'augmentation traitée: %s -> %s", raiseID, req.Decision)
	return helper.Success(c, "Demande traitée", dto.FromModel(*raise))
}

// attachRequesterNames remplit l'identite des demandeurs pour la vue
// admin, en requetes groupees par role.
func (h *RaiseController) attachRequesterNames(resps []dto.RaiseResponse) {
	driverIDs := make([]uuid.UUID, 0)
	supervisorIDs := make([]uuid.UUID, 0)
	for _, r := range resps {
		if r.RequesterType == "driver" {
			driverIDs = append(driverIDs, r.RequesterID)
		} else {
			supervisorIDs = append(supervisorIDs, r.RequesterID)
		}
	}

	userOf := map[uuid.UUID]uuid.UUID{} // requester id -> user id
	userIDs := make([]uuid.UUID, 0)
	if len(driverIDs) > 0 {
		var drivers []driverModel.DriverModel
		if err := h.DB.Where("driver_id IN ?", driverIDs).Find(&drivers).Error; err == nil {
			for _, d := range drivers {
				userOf[d.DriverID] = d.DriverUserID
				userIDs = append(userIDs, d.DriverUserID)
			}
		}
	}
	if len(supervisorIDs) > 0 {
		var sups []supervisorModel.SupervisorModel
		if err := h.DB.Where("supervisor_id IN ?", supervisorIDs).Find(&sups).Error; err == nil {
			for _, s := range sups {
				userOf[s.SupervisorID] = s.SupervisorUserID
				userIDs = append(userIDs, s.SupervisorUserID)
			}
		}
	}
	if len(userIDs) == 0 {
		return
	}

	type name struct{ First, Last string }
	names := map[uuid.UUID]name{}
	var users []userModel.UserModel
	if err := h.DB.Where("user_id IN ?", userIDs).Find(&users).Error; err == nil {
		for _, u := range users {
			names[u.UserID] = name{u.UserFirstName, u.UserLastName}
		}
	}

	for i := range resps {
		if uid, ok := userOf[resps[i].RequesterID]; ok {
			n := names[uid]
			resps[i].RequesterFirstName = n.First
			resps[i].RequesterLastName = n.Last
		}
	}
}
