package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/finance/expenses/dto"
	"transportscolaire_backend/internals/features/finance/expenses/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

func (h *ExpenseController) driverBus(driverID uuid.UUID) (*busModel.BusModel, error) {
	var bus busModel.BusModel
	if err := h.DB.First(&bus, "bus_driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Aucun bus ne vous est affecté")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération du bus")
	}
	return &bus, nil
}

// ownExpense charge une depense et verifie qu'elle appartient bien au
// chauffeur connecte.
func (h *ExpenseController) ownExpense(driverID uuid.UUID, idStr string) (*model.BusExpenseModel, error) {
	expenseID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Identifiant de la dépense invalide")
	}

	var expense model.BusExpenseModel
	if err := h.DB.First(&expense, "bus_expense_id = ?", expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Dépense non trouvée")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération de la dépense")
	}
	if expense.BusExpenseDriverID != driverID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Dépense non autorisée")
	}
	return &expense, nil
}

/* ======================= CHAUFFEUR ======================= */

// POST /api/d/expenses
func (h *ExpenseController) Create(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	bus, err := h.driverBus(driverID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	expense := model.BusExpenseModel{
		BusExpenseID:          uuid.New(),
		BusExpenseBusID:       bus.BusID,
		BusExpenseDriverID:    driverID,
		BusExpenseDate:        date,
		BusExpenseType:        req.Type,
		BusExpenseAmount:      req.Amount,
		BusExpenseDescription: req.Description,
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de l'enregistrement de la dépense")
	}

	return helper.JsonCreated(c, "Dépense enregistrée", dto.FromModel(expense))
}

// GET /api/d/expenses
func (h *ExpenseController) ListMine(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.BusExpenseModel
	if err := h.DB.
		Where("bus_expense_driver_id = ?", driverID).
		Order("bus_expense_date DESC, bus_expense_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des dépenses")
	}
	return helper.Success(c, "Dépenses récupérées", dto.FromModels(rows))
}

// PUT /api/d/expenses/:id
func (h *ExpenseController) Update(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	expense, err := h.ownExpense(driverID, c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(expense)
	if err := h.DB.Save(expense).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la mise à jour de la dépense")
	}

	return helper.Success(c, "Dépense mise à jour", dto.FromModel(*expense))
}

// DELETE /api/d/expenses/:id
func (h *ExpenseController) Delete(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	expense, err := h.ownExpense(driverID, c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Delete(expense).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression de la dépense")
	}
	return helper.Success(c, "Dépense supprimée", nil)
}

/* ======================= ADMIN ======================= */

// GET /api/a/expenses?bus_id=...
func (h *ExpenseController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 500)

	q := h.DB.Model(&model.BusExpenseModel{})
	if busID := c.Query("bus_id"); busID != "" {
		q = q.Where("bus_expense_bus_id = ?", busID)
	}

	var rows []model.BusExpenseModel
	if err := q.
		Order("bus_expense_date DESC, bus_expense_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des dépenses")
	}

	resps := dto.FromModels(rows)

	busIDs := make([]uuid.UUID, 0, len(resps))
	for _, r := range resps {
		busIDs = append(busIDs, r.BusID)
	}
	if len(busIDs) > 0 {
		var buses []busModel.BusModel
		if err := h.DB.Where("bus_id IN ?", busIDs).Find(&buses).Error; err == nil {
			names := map[uuid.UUID]string{}
			for _, b := range buses {
				names[b.BusID] = b.BusCode
			}
			for i := range resps {
				resps[i].BusName = names[resps[i].BusID]
			}
		}
	}

	return helper.Success(c, "Dépenses récupérées", resps)
}
