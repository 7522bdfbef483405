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
	notificationModel "transportscolaire_backend/internals/features/notifications/model"
	"transportscolaire_backend/internals/features/school/attendance/dto"
	"transportscolaire_backend/internals/features/school/attendance/model"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
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
	supervisorID uuid.UUID
	bus          busModel.BusModel
	student      studentModel.StudentModel
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	supervisorID := uuid.New()

	bus := busModel.BusModel{
		BusID:           uuid.New(),
		BusCode:         "BUS-01",
		BusMatricule:    "1234-A-6",
		BusCapacity:     40,
		BusSupervisorID: &supervisorID,
		BusStatus:       "en_service",
	}
	require.NoError(t, db.Create(&bus).Error)

	group := constants.BusGroupA
	student := studentModel.StudentModel{
		StudentID:               uuid.New(),
		StudentTutorID:          uuid.New(),
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
		StudentPaymentStatus:    "paid",
		StudentBusID:            &bus.BusID,
		StudentBusGroup:         &group,
	}
	require.NoError(t, db.Create(&student).Error)

	return fixture{supervisorID: supervisorID, bus: bus, student: student}
}

func absenceCount(t *testing.T, db *gorm.DB, studentID uuid.UUID) int {
	t.Helper()
	var s studentModel.StudentModel
	require.NoError(t, db.First(&s, "student_id = ?", studentID).Error)
	return s.StudentAbsenceCount
}

func TestMarkAbsentIncrementsCounterAndNotifies(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)

	row, err := Mark(db, fx.supervisorID, dto.MarkAttendanceRequest{
		StudentID: fx.student.StudentID,
		Date:      "2026-03-16",
		Period:    PeriodMorning,
		Status:    StatusAbsent,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusAbsent, row.AttendanceStatus)
	assert.Equal(t, 1, absenceCount(t, db, fx.student.StudentID))

	var notif notificationModel.NotificationModel
	require.NoError(t, db.First(&notif, "notification_type = ?", "absence").Error)
	assert.Equal(t, "Absence de votre enfant", notif.NotificationTitle)
	assert.Contains(t, notif.NotificationMessage, "BUS-01")
	assert.Contains(t, notif.NotificationMessage, "16/03/2026")
	assert.Contains(t, notif.NotificationMessage, "Matin")
}

func TestMarkSameStatusIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)

	req := dto.MarkAttendanceRequest{
		StudentID: fx.student.StudentID,
		Date:      "2026-03-16",
		Period:    PeriodMorning,
		Status:    StatusAbsent,
	}
	_, err := Mark(db, fx.supervisorID, req)
	require.NoError(t, err)
	_, err = Mark(db, fx.supervisorID, req)
	require.NoError(t, err)

	// Une seule ligne, un seul increment, une seule notification
	var rows int64
	db.Model(&model.AttendanceModel{}).Count(&rows)
	assert.EqualValues(t, 1, rows)
	assert.Equal(t, 1, absenceCount(t, db, fx.student.StudentID))

	var notifs int64
	db.Model(&notificationModel.NotificationModel{}).Count(&notifs)
	assert.EqualValues(t, 1, notifs)
}

func TestCounterIsMonotone(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)

	req := dto.MarkAttendanceRequest{
		StudentID: fx.student.StudentID,
		Date:      "2026-03-16",
		Period:    PeriodEvening,
		Status:    StatusAbsent,
	}
	_, err := Mark(db, fx.supervisorID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, absenceCount(t, db, fx.student.StudentID))

	// Correction en present : la ligne change, le compteur ne redescend pas
	req.Status = StatusPresent
	row, err := Mark(db, fx.supervisorID, req)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, row.AttendanceStatus)
	assert.Equal(t, 1, absenceCount(t, db, fx.student.StudentID))

	// Re-passage en absent : nouvel increment
	req.Status = StatusAbsent
	_, err = Mark(db, fx.supervisorID, req)
	require.NoError(t, err)
	assert.Equal(t, 2, absenceCount(t, db, fx.student.StudentID))
}

func TestMarkStudentFromAnotherBus(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)

	otherBusID := uuid.New()
	require.NoError(t, db.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", fx.student.StudentID).
		Update("student_bus_id", otherBusID).Error)

	_, err := Mark(db, fx.supervisorID, dto.MarkAttendanceRequest{
		StudentID: fx.student.StudentID,
		Period:    PeriodMorning,
		Status:    StatusPresent,
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.Equal(t, "Bus non autorisé", fe.Message)
}

func TestSheetMergesDayStatuses(t *testing.T) {
	db := newTestDB(t)
	fx := seedFixture(t, db)

	_, err := Mark(db, fx.supervisorID, dto.MarkAttendanceRequest{
		StudentID: fx.student.StudentID,
		Date:      "2026-03-16",
		Period:    PeriodMorning,
		Status:    StatusAbsent,
	})
	require.NoError(t, err)

	entries, err := Sheet(db, fx.supervisorID, "2026-03-16")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StatusAbsent, entries[0].MorningStatus)
	assert.Empty(t, entries[0].EveningStatus)
	assert.Equal(t, 1, entries[0].AbsenceCount)
}

func TestSupervisorWithoutBus(t *testing.T) {
	db := newTestDB(t)

	_, err := Sheet(db, uuid.New(), "")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}
