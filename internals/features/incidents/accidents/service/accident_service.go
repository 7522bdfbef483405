package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	"transportscolaire_backend/internals/features/incidents/accidents/dto"
	"transportscolaire_backend/internals/features/incidents/accidents/model"
	notifService "transportscolaire_backend/internals/features/notifications/service"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

// DriverBus retourne le bus conduit par le chauffeur.
func DriverBus(db *gorm.DB, driverID uuid.UUID) (*busModel.BusModel, error) {
	var bus busModel.BusModel
	if err := db.First(&bus, "bus_driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Aucun bus ne vous est affecté")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération du bus")
	}
	return &bus, nil
}

// Report declare un accident sur le bus du chauffeur connecte.
func Report(db *gorm.DB, driverID uuid.UUID, req dto.ReportAccidentRequest) (*dto.ReportResult, error) {
	bus, err := DriverBus(db, driverID)
	if err != nil {
		return nil, err
	}
	return record(db, driverID, bus.BusID, req.Date, req.Report, req.Severity, true)
}

// RecordByAdmin enregistre un accident saisi par l'administration pour
// un chauffeur et un bus designes explicitement.
func RecordByAdmin(db *gorm.DB, req dto.RecordAccidentRequest) (*dto.ReportResult, error) {
	var bus busModel.BusModel
	if err := db.First(&bus, "bus_id = ?", req.BusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Bus introuvable")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération du bus")
	}
	return record(db, req.DriverID, req.BusID, req.Date, req.Report, req.Severity, false)
}

// record insere l'accident et recalcule le compteur du chauffeur depuis
// la table accidents dans la meme transaction (jamais d'increment
// aveugle), puis le persiste. Au seuil de licenciement, le chauffeur
// recoit l'avertissement d'escalade. L'administration n'est notifiee
// que pour une declaration du chauffeur, pas pour sa propre saisie.
func record(db *gorm.DB, driverID, busID uuid.UUID, date, report, severity string, declaredByDriver bool) (*dto.ReportResult, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var result dto.ReportResult

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var driver driverModel.DriverModel
		if err := tx.First(&driver, "driver_id = ?", driverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chauffeur introuvable")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la déclaration de l'accident")
		}
		var user userModel.UserModel
		if err := tx.First(&user, "user_id = ?", driver.DriverUserID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la déclaration de l'accident")
		}

		accident := model.AccidentModel{
			AccidentID:       uuid.New(),
			AccidentDriverID: driverID,
			AccidentBusID:    busID,
			AccidentDate:     date,
			AccidentReport:   report,
			AccidentSeverity: severity,
		}
		if err := tx.Create(&accident).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la déclaration de l'accident")
		}

		var count int64
		if err := tx.Model(&model.AccidentModel{}).
			Where("accident_driver_id = ?", driverID).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du calcul du nombre d'accidents")
		}

		if err := tx.Model(&driver).
			Update("driver_accident_count", int(count)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du chauffeur")
		}

		escalated := int(count) >= constants.AccidentDismissalThreshold

		if declaredByDriver {
			adminMsg := fmt.Sprintf("%s %s (Chauffeur) a déclaré un accident. Total : %d accident(s).",
				user.UserFirstName, user.UserLastName, count)
			if err := notifService.PushToAdmin(tx,
				&driverID, constants.RoleDriver,
				"accident", "Accident déclaré", adminMsg); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
			}
		}

		driverMsg := fmt.Sprintf("Un accident a été déclaré. Total : %d accident(s).", count)
		if escalated {
			driverMsg = fmt.Sprintf("⚠️ ATTENTION : Vous avez atteint %d accidents. Licenciement + %d DH amende.",
				constants.AccidentDismissalThreshold, constants.AccidentFineAmount)
		}
		if err := notifService.PushToRole(tx,
			driverID, constants.RoleDriver,
			nil, constants.RoleAdmin,
			"accident", "Accident déclaré", driverMsg); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
		}

		result = dto.ReportResult{
			Accident:      dto.FromModel(accident),
			AccidentCount: int(count),
			Escalated:     escalated,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &result, nil
}
