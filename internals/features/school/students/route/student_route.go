package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "transportscolaire_backend/internals/features/school/students/controller"
)

// TutorStudentRoutes : gestion des enfants par leur tuteur.
func TutorStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	s := r.Group("/students")
	s.Post("/", ctl.Create)
	s.Get("/", ctl.ListMine)
	s.Delete("/:id", ctl.Delete)
}

// AdminStudentRoutes : consultation transversale cote administration.
func AdminStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	s := r.Group("/students")
	s.Get("/", ctl.ListAll)
	s.Get("/:id", ctl.GetByID)
}
