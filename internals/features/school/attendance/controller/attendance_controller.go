package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/features/school/attendance/dto"
	"transportscolaire_backend/internals/features/school/attendance/model"
	"transportscolaire_backend/internals/features/school/attendance/service"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	helper "transportscolaire_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ======================= SUPERVISEUR ======================= */

// GET /api/s/attendance/sheet?date=2026-08-31
func (h *AttendanceController) Sheet(c *fiber.Ctx) error {
	supervisorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entries, err := service.Sheet(h.DB, supervisorID, c.Query("date"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Feuille d'appel récupérée", entries)
}

// POST /api/s/attendance
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	supervisorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := service.Mark(h.DB, supervisorID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Présence enregistrée", dto.FromModel(*row))
}

/* ======================= ADMIN ======================= */

// GET /api/a/attendance/absences?date=2026-08-31&bus_id=...&bus_group=A&period=morning
// Liste des absences, filtrable, enrichie du nom de l'eleve.
func (h *AttendanceController) ListAbsences(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 500)

	q := h.DB.Model(&model.AttendanceModel{}).
		Where("attendance_status = ?", service.StatusAbsent)
	if date := c.Query("date"); date != "" {
		q = q.Where("attendance_date = ?", date)
	}
	if raw := c.Query("bus_id"); raw != "" {
		busID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Identifiant de bus invalide")
		}
		q = q.Where("attendance_bus_id = ?", busID)
	}
	if group := c.Query("bus_group"); group != "" {
		q = q.Where("attendance_bus_group = ?", group)
	}
	if period := c.Query("period"); period != "" {
		q = q.Where("attendance_period = ?", period)
	}

	var rows []model.AttendanceModel
	if err := q.
		Order("attendance_date DESC, attendance_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erreur lors de la récupération des absences")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.AttendanceStudentID)
	}
	names := map[uuid.UUID]studentModel.StudentModel{}
	if len(ids) > 0 {
		var students []studentModel.StudentModel
		if err := h.DB.Where("student_id IN ?", ids).Find(&students).Error; err == nil {
			for _, s := range students {
				names[s.StudentID] = s
			}
		}
	}

	resps := make([]dto.AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.FromModel(r)
		if s, ok := names[r.AttendanceStudentID]; ok {
			resp.StudentFirstName = s.StudentFirstName
			resp.StudentLastName = s.StudentLastName
			resp.StudentClass = s.StudentClass
		}
		resps = append(resps, resp)
	}

	report := dto.AbsenceReport{Absences: resps}
	h.DB.Model(&model.AttendanceModel{}).
		Where("attendance_status = ?", service.StatusAbsent).
		Count(&report.TotalAbsences)
	h.DB.Model(&model.AttendanceModel{}).
		Where("attendance_status = ?", service.StatusAbsent).
		Distinct("attendance_student_id").
		Count(&report.StudentsWithAbsences)

	return helper.Success(c, "Absences récupérées", report)
}
