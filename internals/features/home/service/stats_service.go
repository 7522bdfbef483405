package service

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/home/dto"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
)

const errStats = "Erreur lors de la récupération des statistiques"

// BusUsage : nombre d'eleves approuves par bus et taux d'occupation,
// bus les plus charges en tete.
func BusUsage(db *gorm.DB) ([]dto.BusUsageEntry, error) {
	rows := []dto.BusUsageEntry{}
	err := db.Model(&busModel.BusModel{}).
		Select("buses.bus_code AS name, buses.bus_capacity AS capacity, COUNT(students.student_id) AS students").
		Joins("LEFT JOIN students ON students.student_bus_id = buses.bus_id AND students.student_status = ?", "approved").
		Group("buses.bus_id, buses.bus_code, buses.bus_capacity").
		Order("students DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, errStats)
	}
	for i := range rows {
		if rows[i].Capacity > 0 {
			rate := float64(rows[i].Students) / float64(rows[i].Capacity) * 100
			rows[i].OccupancyRate = math.Round(rate*100) / 100
		}
	}
	return rows, nil
}

func approvedGroupCount(db *gorm.DB, column, order string) ([]dto.GroupCount, error) {
	rows := []dto.GroupCount{}
	err := db.Model(&studentModel.StudentModel{}).
		Select(column+" AS name, COUNT(*) AS count").
		Where("student_status = ?", "approved").
		Group(column).
		Order(order).
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, errStats)
	}
	return rows, nil
}

// StudentsByClass : repartition des eleves approuves par classe.
func StudentsByClass(db *gorm.DB) ([]dto.GroupCount, error) {
	return approvedGroupCount(db, "student_class", "student_class ASC")
}

// StudentsByZone : repartition des eleves approuves par quartier.
func StudentsByZone(db *gorm.DB) ([]dto.GroupCount, error) {
	return approvedGroupCount(db, "student_zone", "count DESC")
}

// ByTransportType : repartition aller-retour / aller / retour.
func ByTransportType(db *gorm.DB) ([]dto.GroupCount, error) {
	return approvedGroupCount(db, "student_transport_type", "count DESC")
}

// Gender : garcons / filles parmi les eleves approuves.
func Gender(db *gorm.DB) (dto.GenderBreakdown, error) {
	var out dto.GenderBreakdown
	base := func(gender string) *gorm.DB {
		return db.Model(&studentModel.StudentModel{}).
			Where("student_status = ? AND student_gender = ?", "approved", gender)
	}
	if err := base("garcon").Count(&out.Boys).Error; err != nil {
		return out, fiber.NewError(fiber.StatusInternalServerError, errStats)
	}
	if err := base("fille").Count(&out.Girls).Error; err != nil {
		return out, fiber.NewError(fiber.StatusInternalServerError, errStats)
	}
	return out, nil
}

// DriverAccidents : chauffeurs ayant au moins un accident, les plus
// accidentes en tete.
func DriverAccidents(db *gorm.DB) ([]dto.DriverAccidentEntry, error) {
	rows := []dto.DriverAccidentEntry{}
	err := db.Model(&driverModel.DriverModel{}).
		Select("users.user_first_name || ' ' || users.user_last_name AS name, COUNT(accidents.accident_id) AS accidents").
		Joins("INNER JOIN users ON users.user_id = drivers.driver_user_id").
		Joins("LEFT JOIN accidents ON accidents.accident_driver_id = drivers.driver_id").
		Group("drivers.driver_id, users.user_first_name, users.user_last_name").
		Having("COUNT(accidents.accident_id) > 0").
		Order("accidents DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, errStats)
	}
	return rows, nil
}

// TopAbsentStudents : les cinq eleves approuves les plus absents.
func TopAbsentStudents(db *gorm.DB) ([]dto.AbsentStudentEntry, error) {
	rows := []dto.AbsentStudentEntry{}
	err := db.Model(&studentModel.StudentModel{}).
		Select("student_first_name || ' ' || student_last_name AS name, student_class AS class, student_absence_count AS absences").
		Where("student_status = ? AND student_absence_count > 0", "approved").
		Order("student_absence_count DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, errStats)
	}
	return rows, nil
}
