package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"transportscolaire_backend/internals/middlewares/logger"
)

// SetupMiddlewares branche les middlewares transverses de l'application.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
