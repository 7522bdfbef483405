package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accCtl "transportscolaire_backend/internals/features/incidents/accidents/controller"
)

// DriverAccidentRoutes : declaration et historique du chauffeur.
func DriverAccidentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := accCtl.NewAccidentController(db)

	a := r.Group("/accidents")
	a.Post("/", ctl.Report)
	a.Get("/", ctl.ListMine)
}

// AdminAccidentRoutes : registre complet des accidents + saisie directe.
func AdminAccidentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := accCtl.NewAccidentController(db)

	a := r.Group("/accidents")
	a.Get("/", ctl.ListAll)
	a.Post("/", ctl.CreateByAdmin)
}
