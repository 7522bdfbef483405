package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expCtl "transportscolaire_backend/internals/features/finance/expenses/controller"
)

// DriverExpenseRoutes : depenses du bus du chauffeur connecte.
func DriverExpenseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := expCtl.NewExpenseController(db)

	e := r.Group("/expenses")
	e.Post("/", ctl.Create)
	e.Get("/", ctl.ListMine)
	e.Put("/:id", ctl.Update)
	e.Delete("/:id", ctl.Delete)
}

// AdminExpenseRoutes : consultation transversale.
func AdminExpenseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := expCtl.NewExpenseController(db)

	e := r.Group("/expenses")
	e.Get("/", ctl.ListAll)
}
