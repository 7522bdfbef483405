package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	busCtl "transportscolaire_backend/internals/features/transport/buses/controller"
)

// AdminBusRoutes : gestion de la flotte.
func AdminBusRoutes(r fiber.Router, db *gorm.DB) {
	ctl := busCtl.NewBusController(db)

	b := r.Group("/buses")
	b.Post("/", ctl.Create)
	b.Get("/", ctl.List)
	b.Get("/:id", ctl.GetByID)
	b.Put("/:id", ctl.Update)
	b.Delete("/:id", ctl.Delete)
}
