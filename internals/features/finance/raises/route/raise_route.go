package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	raiseCtl "transportscolaire_backend/internals/features/finance/raises/controller"
)

// StaffRaiseRoutes : depot et suivi, monte sous /d et /s.
func StaffRaiseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := raiseCtl.NewRaiseController(db)

	rr := r.Group("/raises")
	rr.Post("/", ctl.Create)
	rr.Get("/", ctl.ListMine)
}

// AdminRaiseRoutes : arbitrage des demandes.
func AdminRaiseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := raiseCtl.NewRaiseController(db)

	rr := r.Group("/raises")
	rr.Get("/", ctl.ListAll)
	rr.Put("/:id/resolve", ctl.Resolve)
}
