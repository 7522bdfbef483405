package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "transportscolaire_backend/internals/features/school/attendance/controller"
)

// SupervisorAttendanceRoutes : appel quotidien du bus du superviseur.
func SupervisorAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtl.NewAttendanceController(db)

	a := r.Group("/attendance")
	a.Get("/sheet", ctl.Sheet)
	a.Post("/", ctl.Mark)
}

// AdminAttendanceRoutes : suivi transversal des absences.
func AdminAttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtl.NewAttendanceController(db)

	a := r.Group("/attendance")
	a.Get("/absences", ctl.ListAbsences)
}
