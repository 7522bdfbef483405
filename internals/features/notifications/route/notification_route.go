package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "transportscolaire_backend/internals/features/notifications/controller"
)

// NotificationRoutes : boite de reception commune a tous les roles,
// l'acteur vient du token.
func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifCtl.NewNotificationController(db)

	n := r.Group("/notifications")

	n.Get("/", ctl.List)          // GET    /notifications?limit=50
	n.Put("/read", ctl.MarkRead)  // PUT    /notifications/read
	n.Delete("/:id", ctl.Delete)  // DELETE /notifications/:id
}
