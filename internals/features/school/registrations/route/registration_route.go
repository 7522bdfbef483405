package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regCtl "transportscolaire_backend/internals/features/school/registrations/controller"
)

// AdminRegistrationRoutes : file d'attente des inscriptions et decisions.
func AdminRegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := regCtl.NewRegistrationController(db)

	reg := r.Group("/registrations")
	reg.Get("/", ctl.ListPending)
	reg.Put("/:id/approve", ctl.Approve)
	reg.Put("/:id/reject", ctl.Reject)
}
