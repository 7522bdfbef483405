package database

import (
	"log"

	"gorm.io/gorm"

	expenseModel "transportscolaire_backend/internals/features/finance/expenses/model"
	paymentModel "transportscolaire_backend/internals/features/finance/payments/model"
	raiseModel "transportscolaire_backend/internals/features/finance/raises/model"
	accidentModel "transportscolaire_backend/internals/features/incidents/accidents/model"
	notificationModel "transportscolaire_backend/internals/features/notifications/model"
	attendanceModel "transportscolaire_backend/internals/features/school/attendance/model"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	routeModel "transportscolaire_backend/internals/features/transport/routes/model"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

// MigrateAll cree/ajuste le schema. Utilise au demarrage (DB_AUTOMIGRATE=true)
// et par les tests de service sur sqlite en memoire.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.AdminModel{},
		&userModel.TutorModel{},
		&driverModel.DriverModel{},
		&supervisorModel.SupervisorModel{},
		&routeModel.RouteModel{},
		&busModel.BusModel{},
		&studentModel.StudentModel{},
		&paymentModel.PaymentModel{},
		&attendanceModel.AttendanceModel{},
		&accidentModel.AccidentModel{},
		&notificationModel.NotificationModel{},
		&raiseModel.RaiseRequestModel{},
		&expenseModel.BusExpenseModel{},
	)
}

func AutoMigrateIfAsked(db *gorm.DB, asked bool) {
	if !asked {
		return
	}
	if err := MigrateAll(db); err != nil {
		log.Fatalf("❌ Migration echouee: %v", err)
	}
	log.Println("✅ Migration OK.")
}
