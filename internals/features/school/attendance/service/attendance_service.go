package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	notifService "transportscolaire_backend/internals/features/notifications/service"
	"transportscolaire_backend/internals/features/school/attendance/dto"
	"transportscolaire_backend/internals/features/school/attendance/model"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
)

const (
	PeriodMorning = "morning"
	PeriodEvening = "evening"

	StatusPresent = "present"
	StatusAbsent  = "absent"
)

func periodLabel(period string) string {
	if period == PeriodEvening {
		return "Soir"
	}
	return "Matin"
}

// SupervisorBus retourne le bus dont le superviseur a la charge.
func SupervisorBus(db *gorm.DB, supervisorID uuid.UUID) (*busModel.BusModel, error) {
	var bus busModel.BusModel
	if err := db.First(&bus, "bus_supervisor_id = ?", supervisorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Aucun bus ne vous est affecté")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération du bus")
	}
	return &bus, nil
}

// Mark enregistre (ou corrige) l'appel d'un eleve pour une date et une
// periode. Re-marquer au meme statut est un no-op. Le compteur
// d'absences de l'eleve est monotone : il n'augmente qu'au passage vers
// 'absent' et ne redescend jamais, meme si l'appel est corrige en
// 'present' ensuite.
func Mark(db *gorm.DB, supervisorID uuid.UUID, req dto.MarkAttendanceRequest) (*model.AttendanceModel, error) {
	bus, err := SupervisorBus(db, supervisorID)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var marked model.AttendanceModel

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Élève non trouvé")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du marquage de présence")
		}
		if student.StudentBusID == nil || *student.StudentBusID != bus.BusID {
			return fiber.NewError(fiber.StatusForbidden, "Bus non autorisé")
		}

		busGroup := constants.BusGroupA
		if student.StudentBusGroup != nil {
			busGroup = *student.StudentBusGroup
		}

		var existing model.AttendanceModel
		err := tx.Where(
			"attendance_student_id = ? AND attendance_bus_id = ? AND attendance_date = ? AND attendance_period = ?",
			req.StudentID, bus.BusID, date, req.Period,
		).First(&existing).Error

		becameAbsent := false
		switch {
		case err == nil:
			if existing.AttendanceStatus == req.Status {
				marked = existing
				return nil
			}
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"attendance_status":    req.Status,
				"attendance_marked_by": supervisorID,
			}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du marquage de présence")
			}
			existing.AttendanceStatus = req.Status
			marked = existing
			becameAbsent = req.Status == StatusAbsent

		case errors.Is(err, gorm.ErrRecordNotFound):
			row := model.AttendanceModel{
				AttendanceID:        uuid.New(),
				AttendanceStudentID: req.StudentID,
				AttendanceBusID:     bus.BusID,
				AttendanceDate:      date,
				AttendancePeriod:    req.Period,
				AttendanceStatus:    req.Status,
				AttendanceBusGroup:  busGroup,
				AttendanceMarkedBy:  supervisorID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du marquage de présence")
			}
			marked = row
			becameAbsent = req.Status == StatusAbsent

		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors du marquage de présence")
		}

		if !becameAbsent {
			return nil
		}

		if err := tx.Model(&student).
			Update("student_absence_count", gorm.Expr("student_absence_count + 1")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du compteur d'absences")
		}

		d, _ := time.Parse("2006-01-02", date)
		message := fmt.Sprintf(
			"%s %s a été marqué(e) absent(e) dans le bus %s le %s (%s).",
			student.StudentFirstName, student.StudentLastName,
			bus.BusCode, d.Format("02/01/2006"), periodLabel(req.Period))
		if err := notifService.PushToRole(tx,
			student.StudentTutorID, constants.RoleTutor,
			&supervisorID, constants.RoleSupervisor,
			"absence", "Absence de votre enfant", message); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'envoi de la notification")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &marked, nil
}

// Sheet construit la feuille d'appel du bus du superviseur pour une
// date : tous les eleves payes du bus, avec l'etat matin/soir du jour.
func Sheet(db *gorm.DB, supervisorID uuid.UUID, date string) ([]dto.SheetEntry, error) {
	bus, err := SupervisorBus(db, supervisorID)
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var students []studentModel.StudentModel
	if err := db.
		Where("student_bus_id = ? AND student_payment_status = ?", bus.BusID, "paid").
		Order("student_last_name ASC, student_first_name ASC").
		Find(&students).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération des élèves")
	}

	var marks []model.AttendanceModel
	if err := db.
		Where("attendance_bus_id = ? AND attendance_date = ?", bus.BusID, date).
		Find(&marks).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la récupération de l'appel")
	}

	type dayStatus struct{ morning, evening string }
	byStudent := make(map[uuid.UUID]dayStatus, len(marks))
	for _, m := range marks {
		s := byStudent[m.AttendanceStudentID]
		if m.AttendancePeriod == PeriodEvening {
			s.evening = m.AttendanceStatus
		} else {
			s.morning = m.AttendanceStatus
		}
		byStudent[m.AttendanceStudentID] = s
	}

	entries := make([]dto.SheetEntry, 0, len(students))
	for _, s := range students {
		group := ""
		if s.StudentBusGroup != nil {
			group = *s.StudentBusGroup
		}
		ds := byStudent[s.StudentID]
		entries = append(entries, dto.SheetEntry{
			StudentID:     s.StudentID,
			FirstName:     s.StudentFirstName,
			LastName:      s.StudentLastName,
			Class:         s.StudentClass,
			BusGroup:      group,
			AbsenceCount:  s.StudentAbsenceCount,
			MorningStatus: ds.morning,
			EveningStatus: ds.evening,
		})
	}
	return entries, nil
}
