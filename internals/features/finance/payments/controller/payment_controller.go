package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/finance/payments/dto"
	"transportscolaire_backend/internals/features/finance/payments/model"
	"transportscolaire_backend/internals/features/finance/payments/service"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// attachStudentNames remplit le nom de l'eleve sur chaque ligne, en une
// seule requete.
func (h *PaymentController) attachStudentNames(resps []dto.PaymentResponse) {
	if len(resps) == 0 {
		return
	}
	ids := make([]uuid.UUID, 0, len(resps))
	for _, r := range resps {
		ids = append(ids, r.StudentID)
	}

	var students []studentModel.StudentModel
	if err := h.DB.Where("student_id IN ?", ids).Find(&students).Error; err != nil {
		return
	}
	type name struct{ First, Last string }
	names := make(map[uuid.UUID]name, len(students))
	for _, s := range students {
		names[s.StudentID] = name{s.StudentFirstName, s.StudentLastName}
	}
	for i := range resps {
		n := names[resps[i].StudentID]
		resps[i].StudentFirstName = n.First
		resps[i].StudentLastName = n.Last
	}
}

/* ======================= ADMIN ======================= */

// GET /api/a/payments?status=pending
func (h *PaymentController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 500)

	q := h.DB.Model(&model.PaymentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var rows []model.PaymentModel
	if err := q.
		Order("payment_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des paiements")
	}

	resps := dto.FromModels(rows)
	h.attachStudentNames(resps)
	return helper.Success(c, "Paiements récupérés", resps)
}

// PUT /api/a/payments/:id/validate
func (h *PaymentController) Validate(c *fiber.Ctx) error {
	adminID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identifiant du paiement invalide")
	}

	var req dto.ValidatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.Validate(h.DB, paymentID, adminID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[INFO] paiement validé: %s bus=%s groupe=%s", paymentID, req.BusID, req.BusGroup)
	return helper.Success(c, "Paiement validé et bus affecté", result)
}

/* ======================= TUTEUR ======================= */

// GET /api/t/payments
func (h *PaymentController) ListMine(c *fiber.Ctx) error {
	tutorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.PaymentModel
	if err := h.DB.
		Where("payment_tutor_id = ?", tutorID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des paiements")
	}

	resps := dto.FromModels(rows)
	h.attachStudentNames(resps)
	return helper.Success(c, "Paiements récupérés", resps)
}
