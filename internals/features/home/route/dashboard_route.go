package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeCtl "transportscolaire_backend/internals/features/home/controller"
)

func AdminDashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeCtl.NewDashboardController(db)
	r.Get("/stats", ctl.AdminStats)
}

func TutorDashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeCtl.NewDashboardController(db)
	r.Get("/dashboard", ctl.TutorDashboard)
}

func DriverDashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeCtl.NewDashboardController(db)
	r.Get("/dashboard", ctl.DriverDashboard)
}

func SupervisorDashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeCtl.NewDashboardController(db)
	r.Get("/dashboard", ctl.SupervisorDashboard)
}
