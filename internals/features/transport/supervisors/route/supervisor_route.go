package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	supCtl "transportscolaire_backend/internals/features/transport/supervisors/controller"
)

// AdminSupervisorRoutes : gestion du personnel superviseur.
func AdminSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := supCtl.NewSupervisorController(db)

	s := r.Group("/supervisors")
	s.Post("/", ctl.Create)
	s.Get("/", ctl.List)
	s.Get("/:id", ctl.GetByID)
	s.Put("/:id", ctl.Update)
	s.Delete("/:id", ctl.Delete)
}

// SupervisorProfileRoutes : profil du superviseur connecte.
func SupervisorProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := supCtl.NewSupervisorController(db)
	r.Get("/profile", ctl.Profile)
}
