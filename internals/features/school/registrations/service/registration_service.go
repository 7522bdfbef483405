package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	paymentModel "transportscolaire_backend/internals/features/finance/payments/model"
	notifService "transportscolaire_backend/internals/features/notifications/service"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
)

// ApproveResult regroupe ce que l'approbation a produit : l'eleve mis a
// jour et la ligne de paiement en attente, remise familiale appliquee.
type ApproveResult struct {
	Student  studentModel.StudentModel `json:"student"`
	Payment  paymentModel.PaymentModel `json:"payment"`
	Discount int                       `json:"discount_percentage"`
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func loadPendingStudent(tx *gorm.DB, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Inscription non trouvée")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du traitement de l'inscription")
	}
	if student.StudentStatus != "pending" {
		return nil, fiber.NewError(fiber.StatusConflict, "Inscription déjà traitée")
	}
	return &student, nil
}

// Approve valide une inscription en attente : passage a 'approved',
// calcul de la remise familiale sur le nombre d'enfants approuves du
// tuteur (celui-ci compris), creation du paiement en attente et
// notification du tuteur. Le tout dans une seule transaction.
func Approve(db *gorm.DB, studentID uuid.UUID, adminID uuid.UUID) (*ApproveResult, error) {
	var result ApproveResult

	err := db.Transaction(func(tx *gorm.DB) error {
		student, err := loadPendingStudent(tx, studentID)
		if err != nil {
			return err
		}

		if err := tx.Model(student).Update("student_status", "approved").Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la validation de l'inscription")
		}
		student.StudentStatus = "approved"

		var approvedChildren int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_tutor_id = ? AND student_status = ?", student.StudentTutorID, "approved").
			Count(&approvedChildren).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du calcul de la remise")
		}

		amount := constants.SubscriptionAmount(student.StudentSubscriptionType)
		discountPct := constants.FamilyDiscountPercentage(approvedChildren)
		discountAmount := amount * float64(discountPct) / 100
		finalAmount := amount - discountAmount

		payment := paymentModel.PaymentModel{
			PaymentID:                 uuid.New(),
			PaymentStudentID:          student.StudentID,
			PaymentTutorID:            student.StudentTutorID,
			PaymentAmount:             amount,
			PaymentDiscountPercentage: discountPct,
			PaymentDiscountAmount:     discountAmount,
			PaymentFinalAmount:        finalAmount,
			PaymentTransportType:      student.StudentTransportType,
			PaymentSubscriptionType:   student.StudentSubscriptionType,
			PaymentStatus:             "pending",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la création du paiement")
		}

		message := fmt.Sprintf(
			"L'inscription de %s %s a été validée. Veuillez procéder au paiement de %s DH à l'école pour finaliser l'inscription.",
			student.StudentFirstName, student.StudentLastName, formatAmount(finalAmount))
		if err := notifService.PushToRole(tx,
			student.StudentTutorID, constants.RoleTutor,
			&adminID, constants.RoleAdmin,
			"registration", "Inscription validée !", message); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
		}

		result = ApproveResult{Student: *student, Payment: payment, Discount: discountPct}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Reject refuse une inscription en attente et notifie le tuteur.
func Reject(db *gorm.DB, studentID uuid.UUID, adminID uuid.UUID) (*studentModel.StudentModel, error) {
	var rejected studentModel.StudentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		student, err := loadPendingStudent(tx, studentID)
		if err != nil {
			return err
		}

		if err := tx.Model(student).Update("student_status", "rejected").Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du refus de l'inscription")
		}
		student.StudentStatus = "rejected"

		message := fmt.Sprintf(
			"L'inscription de %s %s a été refusée. Veuillez contacter l'administration.",
			student.StudentFirstName, student.StudentLastName)
		if err := notifService.PushToRole(tx,
			student.StudentTutorID, constants.RoleTutor,
			&adminID, constants.RoleAdmin,
			"registration", "Inscription refusée", message); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
		}

		rejected = *student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}
