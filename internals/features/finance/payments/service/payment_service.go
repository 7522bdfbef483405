package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	"transportscolaire_backend/internals/features/finance/payments/dto"
	"transportscolaire_backend/internals/features/finance/payments/model"
	notifService "transportscolaire_backend/internals/features/notifications/service"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
)

// ValidateResult : paiement encaisse + eleve affecte.
type ValidateResult struct {
	Payment model.PaymentModel        `json:"payment"`
	Student studentModel.StudentModel `json:"student"`
}

// Validate encaisse un paiement en attente et affecte l'eleve au bus,
// au groupe et au trajet du bus, atomiquement. Un paiement deja
// encaisse repond 409, jamais un double encaissement silencieux.
func Validate(db *gorm.DB, paymentID uuid.UUID, adminID uuid.UUID, req dto.ValidatePaymentRequest) (*ValidateResult, error) {
	var result ValidateResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var payment model.PaymentModel
		if err := tx.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Paiement non trouvé")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la validation du paiement")
		}
		if payment.PaymentStatus == "paid" {
			return fiber.NewError(fiber.StatusConflict, "Paiement déjà validé")
		}

		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", payment.PaymentStudentID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la validation du paiement")
		}
		if student.StudentStatus != "approved" {
			return fiber.NewError(fiber.StatusConflict, "L'inscription de l'élève n'est pas validée")
		}

		var bus busModel.BusModel
		if err := tx.First(&bus, "bus_id = ?", req.BusID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bus non trouvé")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la validation du paiement")
		}
		if bus.BusRouteID == nil {
			return fiber.NewError(fiber.StatusConflict, "Le bus n'a pas de trajet affecté")
		}

		now := time.Now()
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"payment_status": "paid",
			"payment_date":   now,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la validation du paiement")
		}
		payment.PaymentStatus = "paid"
		payment.PaymentDate = &now

		// Les quatre champs d'affectation changent ensemble, jamais
		// partiellement.
		if err := tx.Model(&student).Updates(map[string]interface{}{
			"student_payment_status": "paid",
			"student_bus_id":         bus.BusID,
			"student_bus_group":      req.BusGroup,
			"student_route_id":       *bus.BusRouteID,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'affectation de l'élève")
		}
		student.StudentPaymentStatus = "paid"
		student.StudentBusID = &bus.BusID
		student.StudentBusGroup = &req.BusGroup
		student.StudentRouteID = bus.BusRouteID

		message := fmt.Sprintf(
			"Le paiement de %s %s a été validé. Bus affecté : %s, %s.",
			student.StudentFirstName, student.StudentLastName,
			bus.BusCode, constants.GroupScheduleText(req.BusGroup))
		if err := notifService.PushToRole(tx,
			student.StudentTutorID, constants.RoleTutor,
			&adminID, constants.RoleAdmin,
			"payment", "Paiement validé et bus affecté", message); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
		}

		result = ValidateResult{Payment: payment, Student: student}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
