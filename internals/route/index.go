package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	expenseRoute "transportscolaire_backend/internals/features/finance/expenses/route"
	paymentRoute "transportscolaire_backend/internals/features/finance/payments/route"
	raiseRoute "transportscolaire_backend/internals/features/finance/raises/route"
	homeRoute "transportscolaire_backend/internals/features/home/route"
	accidentRoute "transportscolaire_backend/internals/features/incidents/accidents/route"
	notifRoute "transportscolaire_backend/internals/features/notifications/route"
	attendanceRoute "transportscolaire_backend/internals/features/school/attendance/route"
	registrationRoute "transportscolaire_backend/internals/features/school/registrations/route"
	studentRoute "transportscolaire_backend/internals/features/school/students/route"
	busRoute "transportscolaire_backend/internals/features/transport/buses/route"
	driverRoute "transportscolaire_backend/internals/features/transport/drivers/route"
	routeRoute "transportscolaire_backend/internals/features/transport/routes/route"
	supervisorRoute "transportscolaire_backend/internals/features/transport/supervisors/route"
	authRoute "transportscolaire_backend/internals/features/users/auth/route"
	authMiddleware "transportscolaire_backend/internals/middlewares/auth"
)

// SetupRoutes monte tous les groupes :
//
//	/api/auth  public (login par role, inscription tuteur)
//	/api/a     administration
//	/api/t     tuteurs
//	/api/d     chauffeurs
//	/api/s     superviseurs
//	/api/u     tout role connecte (notifications)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Montage des routes d'authentification...")
	authRoute.AuthRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Montage des routes admin...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Accès réservé à l'administration", constants.RoleAdmin),
	)
	registrationRoute.AdminRegistrationRoutes(admin, db)
	studentRoute.AdminStudentRoutes(admin, db)
	paymentRoute.AdminPaymentRoutes(admin, db)
	attendanceRoute.AdminAttendanceRoutes(admin, db)
	accidentRoute.AdminAccidentRoutes(admin, db)
	raiseRoute.AdminRaiseRoutes(admin, db)
	expenseRoute.AdminExpenseRoutes(admin, db)
	busRoute.AdminBusRoutes(admin, db)
	routeRoute.AdminRouteRoutes(admin, db)
	driverRoute.AdminDriverRoutes(admin, db)
	supervisorRoute.AdminSupervisorRoutes(admin, db)
	homeRoute.AdminDashboardRoutes(admin, db)

	// ===================== TUTEUR =====================
	log.Println("[INFO] Montage des routes tuteur...")
	tutor := api.Group("/t",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Accès réservé aux tuteurs", constants.RoleTutor),
	)
	studentRoute.TutorStudentRoutes(tutor, db)
	paymentRoute.TutorPaymentRoutes(tutor, db)
	homeRoute.TutorDashboardRoutes(tutor, db)

	// ===================== CHAUFFEUR =====================
	log.Println("[INFO] Montage des routes chauffeur...")
	driver := api.Group("/d",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Accès réservé aux chauffeurs", constants.RoleDriver),
	)
	accidentRoute.DriverAccidentRoutes(driver, db)
	expenseRoute.DriverExpenseRoutes(driver, db)
	raiseRoute.StaffRaiseRoutes(driver, db)
	driverRoute.DriverProfileRoutes(driver, db)
	homeRoute.DriverDashboardRoutes(driver, db)

	// ===================== SUPERVISEUR =====================
	log.Println("[INFO] Montage des routes superviseur...")
	supervisor := api.Group("/s",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Accès réservé aux superviseurs", constants.RoleSupervisor),
	)
	attendanceRoute.SupervisorAttendanceRoutes(supervisor, db)
	raiseRoute.StaffRaiseRoutes(supervisor, db)
	supervisorRoute.SupervisorProfileRoutes(supervisor, db)
	homeRoute.SupervisorDashboardRoutes(supervisor, db)

	// ===================== COMMUN =====================
	log.Println("[INFO] Montage des routes communes...")
	common := api.Group("/u", authMiddleware.AuthMiddleware())
	notifRoute.NotificationRoutes(common, db)
}
