package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	"transportscolaire_backend/internals/features/finance/raises/dto"
	"transportscolaire_backend/internals/features/finance/raises/model"
	notifService "transportscolaire_backend/internals/features/notifications/service"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

func roleLabel(role string) string {
	if role == constants.RoleSupervisor {
		return "Superviseur"
	}
	return "Chauffeur"
}

// requesterProfile resout le salaire actuel et l'identite du demandeur
// selon son role.
func requesterProfile(db *gorm.DB, requesterID uuid.UUID, role string) (float64, *userModel.UserModel, error) {
	var userID uuid.UUID
	var salary float64

	switch role {
	case constants.RoleDriver:
		var d driverModel.DriverModel
		if err := db.First(&d, "driver_id = ?", requesterID).Error; err != nil {
			return 0, nil, fiber.NewError(fiber.StatusNotFound, "Profil du demandeur non trouvé")
		}
		userID, salary = d.DriverUserID, d.DriverSalary
	case constants.RoleSupervisor:
		var s supervisorModel.SupervisorModel
		if err := db.First(&s, "supervisor_id = ?", requesterID).Error; err != nil {
			return 0, nil, fiber.NewError(fiber.StatusNotFound, "Profil du demandeur non trouvé")
		}
		userID, salary = s.SupervisorUserID, s.SupervisorSalary
	default:
		return 0, nil, fiber.NewError(fiber.StatusForbidden, "Rôle non autorisé pour cette demande")
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return 0, nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération du profil")
	}
	return salary, &user, nil
}

// Create depose une demande d'augmentation avec le salaire actuel fige
// au moment du depot, et notifie l'administration.
func Create(db *gorm.DB, requesterID uuid.UUID, role string, req dto.CreateRaiseRequest) (*model.RaiseRequestModel, error) {
	salary, user, err := requesterProfile(db, requesterID, role)
	if err != nil {
		return nil, err
	}

	var pending int64
	if err := db.Model(&model.RaiseRequestModel{}).
		Where("raise_request_requester_id = ? AND raise_request_status = ?", requesterID, "pending").
		Count(&pending).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du dépôt de la demande")
	}
	if pending > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Vous avez déjà une demande en attente")
	}

	raise := model.RaiseRequestModel{
		RaiseRequestID:            uuid.New(),
		RaiseRequestRequesterID:   requesterID,
		RaiseRequestRequesterType: role,
		RaiseRequestCurrentSalary: salary,
		RaiseRequestReasons:       req.Reasons,
		RaiseRequestStatus:        "pending",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&raise).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du dépôt de la demande")
		}
		message := fmt.Sprintf("%s %s (%s) demande une augmentation.",
			user.UserFirstName, user.UserLastName, roleLabel(role))
		if err := notifService.PushToAdmin(tx,
			&requesterID, role,
			"raise_request", "Demande d'augmentation", message); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &raise, nil
}

// Resolve approuve ou refuse une demande en attente et notifie le
// demandeur. Aucun salaire n'est modifie ici.
func Resolve(db *gorm.DB, raiseID uuid.UUID, adminID uuid.UUID, decision string) (*model.RaiseRequestModel, error) {
	var resolved model.RaiseRequestModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var raise model.RaiseRequestModel
		if err := tx.First(&raise, "raise_request_id = ?", raiseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Demande non trouvée")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du traitement de la demande")
		}
		if raise.RaiseRequestStatus != "pending" {
			return fiber.NewError(fiber.StatusConflict, "Demande déjà traitée")
		}

		if err := tx.Model(&raise).Update("raise_request_status", decision).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du traitement de la demande")
		}
		raise.RaiseRequestStatus = decision

		verdict := "approuvée"
		if decision == "rejected" {
			verdict = "refusée"
		}
		message := fmt.Sprintf("Votre demande d'augmentation a été %s.", verdict)
		if err := notifService.PushToRole(tx,
			raise.RaiseRequestRequesterID, raise.RaiseRequestRequesterType,
			&adminID, constants.RoleAdmin,
			"raise_request", "Demande d'augmentation "+verdict, message); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
		}

		resolved = raise
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}
