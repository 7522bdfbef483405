package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	"transportscolaire_backend/internals/features/notifications/dto"
	"transportscolaire_backend/internals/features/notifications/model"
	"transportscolaire_backend/internals/features/notifications/service"
	helper "transportscolaire_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// recipientFromToken resout le couple (recipient_id, recipient_type) de
// l'acteur connecte. L'admin est adresse par la chaine litterale "admin".
func recipientFromToken(c *fiber.Ctx) (string, string, error) {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return "", "", err
	}
	if role == constants.RoleAdmin {
		return service.AdminRecipient, service.AdminRecipient, nil
	}
	actorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return "", "", err
	}
	return actorID.String(), role, nil
}

/* ======================= LIST ======================= */
// GET /api/u/notifications?limit=50
func (h *NotificationController) List(c *fiber.Ctx) error {
	recipientID, recipientType, err := recipientFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var rows []model.NotificationModel
	if err := h.DB.
		Where("notification_recipient_id = ? AND notification_recipient_type = ?", recipientID, recipientType).
		Order("notification_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la recuperation des notifications")
	}

	return helper.Success(c, "Notifications recuperees", dto.FromModels(rows))
}

/* ======================= MARK READ ======================= */
// PUT /api/u/notifications/read
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	recipientID, recipientType, err := recipientFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}

	res := h.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_recipient_id = ? AND notification_recipient_type = ?",
			req.NotificationID, recipientID, recipientType).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la mise a jour de la notification")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notification non trouvee")
	}

	return helper.Success(c, "Notification marquee comme lue", nil)
}

/* ======================= DELETE ======================= */
// DELETE /api/u/notifications/:id
func (h *NotificationController) Delete(c *fiber.Ctx) error {
	recipientID, recipientType, err := recipientFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	idStr := c.Params("id")
	if idStr == "" {
		return helper.Error(c, fiber.StatusBadRequest, "ID de la notification requis")
	}

	var row model.NotificationModel
	if err := h.DB.
		Where("notification_id = ? AND notification_recipient_id = ? AND notification_recipient_type = ?",
			idStr, recipientID, recipientType).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notification non trouvee")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression")
	}

	if err := h.DB.Delete(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la suppression")
	}

	return helper.Success(c, "Notification supprimee", nil)
}
