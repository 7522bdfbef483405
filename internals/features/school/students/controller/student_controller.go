package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/school/students/dto"
	"transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	routeModel "transportscolaire_backend/internals/features/transport/routes/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// enrichAssignments renseigne le nom du bus et le trajet des eleves
// affectes, en deux requetes groupees plutot qu'une jointure par ligne.
func (h *StudentController) enrichAssignments(resps []dto.StudentResponse) {
	busIDs := make([]uuid.UUID, 0)
	routeIDs := make([]uuid.UUID, 0)
	for _, r := range resps {
		if r.BusID != nil {
			busIDs = append(busIDs, *r.BusID)
		}
		if r.RouteID != nil {
			routeIDs = append(routeIDs, *r.RouteID)
		}
	}
	if len(busIDs) == 0 && len(routeIDs) == 0 {
		return
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

	type routeLite struct{ Departure, Terminus string }
	routes := map[uuid.UUID]routeLite{}
	if len(routeIDs) > 0 {
		var rows []routeModel.RouteModel
		if err := h.DB.Where("route_id IN ?", routeIDs).Find(&rows).Error; err == nil {
			for _, rt := range rows {
				routes[rt.RouteID] = routeLite{rt.RouteDeparture, rt.RouteTerminus}
			}
		}
	}

	for i := range resps {
		if resps[i].BusID != nil {
			resps[i].BusName = busNames[*resps[i].BusID]
		}
		if resps[i].RouteID != nil {
			rt := routes[*resps[i].RouteID]
			resps[i].RouteDeparture = rt.Departure
			resps[i].RouteTerminus = rt.Terminus
		}
	}
}

/* ======================= TUTEUR ======================= */

// POST /api/t/students
// Nouvelle inscription, toujours creee en attente et non payee.
func (h *StudentController) Create(c *fiber.Ctx) error {
	tutorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := req.ToModel(tutorID)
	if err := h.DB.Create(student).Error; err != nil {
		log.Printf("[ERROR] creation eleve: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de l'inscription de l'élève")
	}

	return helper.JsonCreated(c, "Inscription envoyée. En attente de validation par l'administration.", dto.FromModel(*student))
}

// GET /api/t/students
func (h *StudentController) ListMine(c *fiber.Ctx) error {
	tutorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.StudentModel
	if err := h.DB.
		Where("student_tutor_id = ?", tutorID).
		Order("student_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des élèves")
	}

	resps := dto.FromModels(rows)
	h.enrichAssignments(resps)
	return helper.Success(c, "Élèves récupérés", resps)
}

// DELETE /api/t/students/:id
// Un tuteur ne peut retirer qu'une inscription encore en attente.
func (h *StudentController) Delete(c *fiber.Ctx) error {
	tutorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant de l'élève invalide")
	}

	var student model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_tutor_id = ?", studentID, tutorID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Élève non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression")
	}

	if student.StudentStatus != "pending" {
		return helper.Error(c, fiber.StatusConflict, "Impossible de supprimer une inscription déjà traitée")
	}

	if err := h.DB.Delete(&student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression")
	}

	return helper.Success(c, "Inscription supprimée", nil)
}

/* ======================= ADMIN ======================= */

// GET /api/a/students?status=approved
func (h *StudentController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 500)

	q := h.DB.Model(&model.StudentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}

	var rows []model.StudentModel
	if err := q.
		Order("student_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des élèves")
	}

	resps := dto.FromModels(rows)
	h.enrichAssignments(resps)
	return helper.Success(c, "Élèves récupérés", resps)
}

// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant de l'élève invalide")
	}

	var student model.StudentModel
	if err := h.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Élève non trouvé")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération de l'élève")
	}

	resps := []dto.StudentResponse{dto.FromModel(student)}
	h.enrichAssignments(resps)
	return helper.Success(c, "Élève récupéré", resps[0])
}
