package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"transportscolaire_backend/internals/constants"
	database "transportscolaire_backend/internals/databases"
	"transportscolaire_backend/internals/features/finance/payments/dto"
	"transportscolaire_backend/internals/features/finance/payments/model"
	notificationModel "transportscolaire_backend/internals/features/notifications/model"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	routeModel "transportscolaire_backend/internals/features/transport/routes/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateAll(db))
	return db
}

type fixture struct {
	student studentModel.StudentModel
	payment model.PaymentModel
	bus     busModel.BusModel
	route   routeModel.RouteModel
}

func seedFixture(t *testing.T, db *gorm.DB, withRoute bool) fixture {
	t.Helper()
	tutorID := uuid.New()

	route := routeModel.RouteModel{
		RouteID:        uuid.New(),
		RouteCode:      "TRJ-01",
		RouteDeparture: "École Mohammed V",
		RouteTerminus:  "Hay Hassani",
	}
	require.NoError(t, db.Create(&route).Error)

	bus := busModel.BusModel{
		BusID:        uuid.New(),
		BusCode:      "BUS-01",
		BusMatricule: "1234-A-6",
		BusCapacity:  40,
		BusStatus:    "en_service",
	}
	if withRoute {
		bus.BusRouteID = &route.RouteID
	}
	require.NoError(t, db.Create(&bus).Error)

	student := studentModel.StudentModel{
		StudentID:               uuid.New(),
		StudentTutorID:          tutorID,
		StudentFirstName:        "Yassine",
		StudentLastName:         "Benali",
		StudentClass:            "CE2",
		StudentAge:              8,
		StudentGender:           "garcon",
		StudentZone:             "Maarif",
		StudentParentRelation:   "pere",
		StudentTransportType:    "aller-retour",
		StudentSubscriptionType: constants.SubscriptionMonthly,
		StudentStatus:           "approved",
		StudentPaymentStatus:    "unpaid",
	}
	require.NoError(t, db.Create(&student).Error)

	payment := model.PaymentModel{
		PaymentID:               uuid.New(),
		PaymentStudentID:        student.StudentID,
		PaymentTutorID:          tutorID,
		PaymentAmount:           300,
		PaymentFinalAmount:      300,
		PaymentTransportType:    "aller-retour",
		PaymentSubscriptionType: constants.SubscriptionMonthly,
		PaymentStatus:           "pending",
	}
	require.NoError(t, db.Create(&payment).Error)

	return fixture{student: student, payment: payment, bus: bus, route: route}
}

func TestValidateAssignsStudentAtomically(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db, true)
	adminID := uuid.New()

	result, err := Validate(db, fx.payment.PaymentID, adminID, dto.ValidatePaymentRequest{
		BusID:    fx.bus.BusID,
		BusGroup: constants.BusGroupA,
	})
	require.NoError(t, err)

	assert.Equal(t, "paid", result.Payment.PaymentStatus)
	require.NotNil(t, result.Payment.PaymentDate)

	// Les quatre champs d'affectation sont poses ensemble
	var student studentModel.StudentModel
	require.NoError(t, db.First(&student, "student_id = ?", fx.student.StudentID).Error)
	assert.Equal(t, "paid", student.StudentPaymentStatus)
	require.NotNil(t, student.StudentBusID)
	assert.Equal(t, fx.bus.BusID, *student.StudentBusID)
	require.NotNil(t, student.StudentBusGroup)
	assert.Equal(t, constants.BusGroupA, *student.StudentBusGroup)
	require.NotNil(t, student.StudentRouteID)
	assert.Equal(t, fx.route.RouteID, *student.StudentRouteID)

	// Notification avec le nom du bus et le creneau du groupe
	var notif notificationModel.NotificationModel
	require.NoError(t, db.First(&notif, "notification_type = ?", "payment").Error)
	assert.Equal(t, "Paiement validé et bus affecté", notif.NotificationTitle)
	assert.Contains(t, notif.NotificationMessage, "BUS-01")
	assert.Contains(t, notif.NotificationMessage, constants.GroupAScheduleText)
}

func TestValidateTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db, true)
	adminID := uuid.New()

	req := dto.ValidatePaymentRequest{BusID: fx.bus.BusID, BusGroup: constants.BusGroupB}
	_, err := Validate(db, fx.payment.PaymentID, adminID, req)
	require.NoError(t, err)

	_, err = Validate(db, fx.payment.PaymentID, adminID, req)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestValidateBusWithoutRoute(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db, false)

	_, err := Validate(db, fx.payment.PaymentID, uuid.New(), dto.ValidatePaymentRequest{
		BusID:    fx.bus.BusID,
		BusGroup: constants.BusGroupA,
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)

	// Rien n'a ete encaisse
	var payment model.PaymentModel
	require.NoError(t, db.First(&payment, "payment_id = ?", fx.payment.PaymentID).Error)
	assert.Equal(t, "pending", payment.PaymentStatus)
}

func TestValidateUnknownPayment(t *testing.T) {
	db := newTestDB(t)

	_, err := Validate(db, uuid.New(), uuid.New(), dto.ValidatePaymentRequest{
		BusID:    uuid.New(),
		BusGroup: constants.BusGroupA,
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
