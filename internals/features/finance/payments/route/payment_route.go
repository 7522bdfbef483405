package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "transportscolaire_backend/internals/features/finance/payments/controller"
)

// AdminPaymentRoutes : encaissement et affectation.
func AdminPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	p := r.Group("/payments")
	p.Get("/", ctl.ListAll)
	p.Put("/:id/validate", ctl.Validate)
}

// TutorPaymentRoutes : suivi des paiements de ses enfants.
func TutorPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	p := r.Group("/payments")
	p.Get("/", ctl.ListMine)
}
