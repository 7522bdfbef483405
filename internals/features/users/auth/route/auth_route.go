package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "transportscolaire_backend/internals/features/users/auth/controller"
	"transportscolaire_backend/internals/middlewares"
)

// AuthRoutes : endpoints publics (login par role + inscription tuteur),
// chacun derriere son limiteur de debit.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := r.Group("/auth")

	login := auth.Group("/login", middlewares.LoginRateLimiter())
	login.Post("/admin", ctl.LoginAdmin)
	login.Post("/tutor", ctl.LoginTutor)
	login.Post("/driver", ctl.LoginDriver)
	login.Post("/supervisor", ctl.LoginSupervisor)

	auth.Post("/register/tutor", middlewares.RegisterRateLimiter(), ctl.RegisterTutor)
	auth.Post("/logout", ctl.Logout)
}
