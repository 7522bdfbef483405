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
	paymentModel "transportscolaire_backend/internals/features/finance/payments/model"
	notificationModel "transportscolaire_backend/internals/features/notifications/model"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
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

func seedStudent(t *testing.T, db *gorm.DB, tutorID uuid.UUID, subscription, status string) studentModel.StudentModel {
	t.Helper()
	s := studentModel.StudentModel{
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
		StudentSubscriptionType: subscription,
		StudentStatus:           status,
		StudentPaymentStatus:    "unpaid",
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func TestApproveCreatesPendingPayment(t *testing.T) {
	db := newTestDB(t)
	tutorID := uuid.New()
	adminID := uuid.New()
	student := seedStudent(t, db, tutorID, constants.SubscriptionYearly, "pending")

	result, err := Approve(db, student.StudentID, adminID)
	require.NoError(t, err)

	assert.Equal(t, "approved", result.Student.StudentStatus)
	assert.Equal(t, 0, result.Discount)
	assert.Equal(t, float64(3000), result.Payment.PaymentAmount)
	assert.Equal(t, float64(3000), result.Payment.PaymentFinalAmount)
	assert.Equal(t, "pending", result.Payment.PaymentStatus)
	assert.Equal(t, tutorID, result.Payment.PaymentTutorID)

	// Notification adressee au tuteur
	var notif notificationModel.NotificationModel
	require.NoError(t, db.First(&notif, "notification_recipient_id = ?", tutorID.String()).Error)
	assert.Equal(t, "Inscription validée !", notif.NotificationTitle)
	assert.Contains(t, notif.NotificationMessage, "3000 DH")
}

func TestApproveFamilyDiscountTiers(t *testing.T) {
	db := newTestDB(t)
	tutorID := uuid.New()
	adminID := uuid.New()

	// Premier enfant : pas de remise
	first := seedStudent(t, db, tutorID, constants.SubscriptionMonthly, "pending")
	r1, err := Approve(db, first.StudentID, adminID)
	require.NoError(t, err)
	assert.Equal(t, 0, r1.Discount)
	assert.Equal(t, float64(300), r1.Payment.PaymentFinalAmount)

	// Deuxieme enfant : 10%
	second := seedStudent(t, db, tutorID, constants.SubscriptionMonthly, "pending")
	r2, err := Approve(db, second.StudentID, adminID)
	require.NoError(t, err)
	assert.Equal(t, 10, r2.Discount)
	assert.Equal(t, float64(30), r2.Payment.PaymentDiscountAmount)
	assert.Equal(t, float64(270), r2.Payment.PaymentFinalAmount)

	// Troisieme enfant : 30%
	third := seedStudent(t, db, tutorID, constants.SubscriptionYearly, "pending")
	r3, err := Approve(db, third.StudentID, adminID)
	require.NoError(t, err)
	assert.Equal(t, 30, r3.Discount)
	assert.Equal(t, float64(900), r3.Payment.PaymentDiscountAmount)
	assert.Equal(t, float64(2100), r3.Payment.PaymentFinalAmount)
}

func TestApproveAlreadyProcessed(t *testing.T) {
	db := newTestDB(t)
	adminID := uuid.New()
	student := seedStudent(t, db, uuid.New(), constants.SubscriptionMonthly, "pending")

	_, err := Approve(db, student.StudentID, adminID)
	require.NoError(t, err)

	_, err = Approve(db, student.StudentID, adminID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)

	// Un seul paiement cree
	var n int64
	db.Model(&paymentModel.PaymentModel{}).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestApproveNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := Approve(db, uuid.New(), uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestRejectNotifiesTutorWithoutPayment(t *testing.T) {
	db := newTestDB(t)
	tutorID := uuid.New()
	student := seedStudent(t, db, tutorID, constants.SubscriptionMonthly, "pending")

	rejected, err := Reject(db, student.StudentID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.StudentStatus)

	var payments int64
	db.Model(&paymentModel.PaymentModel{}).Count(&payments)
	assert.EqualValues(t, 0, payments)

	var notif notificationModel.NotificationModel
	require.NoError(t, db.First(&notif, "notification_recipient_id = ?", tutorID.String()).Error)
	assert.Equal(t, "Inscription refusée", notif.NotificationTitle)
	assert.Contains(t, notif.NotificationMessage, "contacter l'administration")
}
