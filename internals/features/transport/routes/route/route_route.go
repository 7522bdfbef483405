package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeCtl "transportscolaire_backend/internals/features/transport/routes/controller"
)

// AdminRouteRoutes : gestion des trajets de ramassage.
func AdminRouteRoutes(r fiber.Router, db *gorm.DB) {
	ctl := routeCtl.NewRouteController(db)

	rt := r.Group("/routes")
	rt.Post("/", ctl.Create)
	rt.Get("/", ctl.List)
	rt.Get("/:id", ctl.GetByID)
	rt.Put("/:id", ctl.Update)
	rt.Delete("/:id", ctl.Delete)
}
