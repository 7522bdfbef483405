package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	driverCtl "transportscolaire_backend/internals/features/transport/drivers/controller"
)

// AdminDriverRoutes : gestion du personnel chauffeur.
func AdminDriverRoutes(r fiber.Router, db *gorm.DB) {
	ctl := driverCtl.NewDriverController(db)

	d := r.Group("/drivers")
	d.Post("/", ctl.Create)
	d.Get("/", ctl.List)
	d.Get("/:id", ctl.GetByID)
	d.Put("/:id", ctl.Update)
	d.Delete("/:id", ctl.Delete)
}

// DriverProfileRoutes : profil du chauffeur connecte.
func DriverProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := driverCtl.NewDriverController(db)
	r.Get("/profile", ctl.Profile)
}
