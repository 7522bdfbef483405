package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseModel "transportscolaire_backend/internals/features/finance/expenses/model"
	paymentModel "transportscolaire_backend/internals/features/finance/payments/model"
	raiseModel "transportscolaire_backend/internals/features/finance/raises/model"
	"transportscolaire_backend/internals/features/home/dto"
	"transportscolaire_backend/internals/features/home/service"
	accidentModel "transportscolaire_backend/internals/features/incidents/accidents/model"
	notificationModel "transportscolaire_backend/internals/features/notifications/model"
	attendanceModel "transportscolaire_backend/internals/features/school/attendance/model"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busDTO "transportscolaire_backend/internals/features/transport/buses/dto"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	routeModel "transportscolaire_backend/internals/features/transport/routes/model"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
	helper "transportscolaire_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (h *DashboardController) count(model interface{}, query string, args ...interface{}) int64 {
	var n int64
	q := h.DB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	q.Count(&n)
	return n
}

func (h *DashboardController) sum(model interface{}, column, query string, args ...interface{}) float64 {
	var total float64
	q := h.DB.Model(model).Select("COALESCE(SUM(" + column + "), 0)")
	if query != "" {
		q = q.Where(query, args...)
	}
	q.Scan(&total)
	return total
}

func (h *DashboardController) unread(recipientID, recipientType string) int64 {
	return h.count(&notificationModel.NotificationModel{},
		"notification_recipient_id = ? AND notification_recipient_type = ? AND notification_is_read = ?",
		recipientID, recipientType, false)
}

/* ======================= ADMIN ======================= */

// GET /api/a/stats
func (h *DashboardController) AdminStats(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	stats := dto.AdminStats{
		TotalStudents:        h.count(&studentModel.StudentModel{}, ""),
		PendingRegistrations: h.count(&studentModel.StudentModel{}, "student_status = ?", "pending"),
		ApprovedStudents:     h.count(&studentModel.StudentModel{}, "student_status = ?", "approved"),
		PaidStudents:         h.count(&studentModel.StudentModel{}, "student_payment_status = ?", "paid"),
		TotalTutors:          h.count(&userModel.TutorModel{}, ""),
		TotalDrivers:         h.count(&driverModel.DriverModel{}, ""),
		TotalSupervisors:     h.count(&supervisorModel.SupervisorModel{}, ""),
		TotalBuses:           h.count(&busModel.BusModel{}, ""),
		TotalRoutes:          h.count(&routeModel.RouteModel{}, ""),
		PendingPayments:      h.count(&paymentModel.PaymentModel{}, "payment_status = ?", "pending"),
		TotalRevenue:         h.sum(&paymentModel.PaymentModel{}, "payment_final_amount", "payment_status = ?", "paid"),
		PendingRevenue:       h.sum(&paymentModel.PaymentModel{}, "payment_final_amount", "payment_status = ?", "pending"),
		TotalExpenses:        h.sum(&expenseModel.BusExpenseModel{}, "bus_expense_amount", ""),
		TotalAccidents:       h.count(&accidentModel.AccidentModel{}, ""),
		PendingRaises:        h.count(&raiseModel.RaiseRequestModel{}, "raise_request_status = ?", "pending"),
		AbsencesToday:        h.count(&attendanceModel.AttendanceModel{}, "attendance_status = ? AND attendance_date = ?", "absent", today),
	}

	var err error
	if stats.BusUsage, err = service.BusUsage(h.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	if stats.StudentsByClass, err = service.StudentsByClass(h.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	if stats.StudentsByZone, err = service.StudentsByZone(h.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	if stats.ByTransportType, err = service.ByTransportType(h.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	if stats.Gender, err = service.Gender(h.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	if stats.DriverAccidents, err = service.DriverAccidents(h.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	if stats.TopAbsentStudents, err = service.TopAbsentStudents(h.DB); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Statistiques récupérées", stats)
}

/* ======================= TUTEUR ======================= */

// GET /api/t/dashboard
func (h *DashboardController) TutorDashboard(c *fiber.Ctx) error {
	tutorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	dash := dto.TutorDashboard{
		ChildrenCount:       h.count(&studentModel.StudentModel{}, "student_tutor_id = ?", tutorID),
		PendingChildren:     h.count(&studentModel.StudentModel{}, "student_tutor_id = ? AND student_status = ?", tutorID, "pending"),
		PendingPayments:     h.count(&paymentModel.PaymentModel{}, "payment_tutor_id = ? AND payment_status = ?", tutorID, "pending"),
		UnreadNotifications: h.unread(tutorID.String(), "tutor"),
	}
	return helper.Success(c, "Tableau de bord récupéré", dash)
}

/* ======================= CHAUFFEUR ======================= */

// GET /api/d/dashboard
func (h *DashboardController) DriverDashboard(c *fiber.Ctx) error {
	driverID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	dash := dto.DriverDashboard{
		PendingRaises:       h.count(&raiseModel.RaiseRequestModel{}, "raise_request_requester_id = ? AND raise_request_status = ?", driverID, "pending"),
		UnreadNotifications: h.unread(driverID.String(), "driver"),
	}

	var driver driverModel.DriverModel
	if err := h.DB.First(&driver, "driver_id = ?", driverID).Error; err == nil {
		dash.AccidentCount = driver.DriverAccidentCount
	}

	monthStart := time.Now().Format("2006-01") + "-01"
	dash.ExpensesThisMonth = h.sum(&expenseModel.BusExpenseModel{}, "bus_expense_amount",
		"bus_expense_driver_id = ? AND bus_expense_date >= ?", driverID, monthStart)

	var bus busModel.BusModel
	if err := h.DB.First(&bus, "bus_driver_id = ?", driverID).Error; err == nil {
		resp := busDTO.FromModel(bus)
		h.DB.Model(&studentModel.StudentModel{}).
			Where("student_bus_id = ? AND student_payment_status = ?", bus.BusID, "paid").
			Count(&resp.StudentCount)
		dash.Bus = &resp
	}

	return helper.Success(c, "Tableau de bord récupéré", dash)
}

/* ======================= SUPERVISEUR ======================= */

// GET /api/s/dashboard
func (h *DashboardController) SupervisorDashboard(c *fiber.Ctx) error {
	supervisorID, err := helper.GetActorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	dash := dto.SupervisorDashboard{
		UnreadNotifications: h.unread(supervisorID.String(), "supervisor"),
	}

	var bus busModel.BusModel
	if err := h.DB.First(&bus, "bus_supervisor_id = ?", supervisorID).Error; err == nil {
		resp := busDTO.FromModel(bus)
		h.DB.Model(&studentModel.StudentModel{}).
			Where("student_bus_id = ? AND student_payment_status = ?", bus.BusID, "paid").
			Count(&resp.StudentCount)
		dash.Bus = &resp
		dash.StudentCount = resp.StudentCount

		today := time.Now().Format("2006-01-02")
		dash.AbsencesToday = h.count(&attendanceModel.AttendanceModel{},
			"attendance_bus_id = ? AND attendance_date = ? AND attendance_status = ?",
			bus.BusID, today, "absent")
	}

	return helper.Success(c, "Tableau de bord récupéré", dash)
}
