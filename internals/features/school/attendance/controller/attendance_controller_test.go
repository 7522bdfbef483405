package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
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
	"transportscolaire_backend/internals/features/school/attendance/model"
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

func seedAbsence(t *testing.T, db *gorm.DB, busID uuid.UUID, date, period, group string) {
	t.Helper()

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
	}
	require.NoError(t, db.Create(&student).Error)

	require.NoError(t, db.Create(&model.AttendanceModel{
		AttendanceID:        uuid.New(),
		AttendanceStudentID: student.StudentID,
		AttendanceBusID:     busID,
		AttendanceDate:      date,
		AttendancePeriod:    period,
		AttendanceStatus:    "absent",
		AttendanceBusGroup:  group,
		AttendanceMarkedBy:  uuid.New(),
	}).Error)
}

type absenceReport struct {
	Absences             []map[string]interface{} `json:"absences"`
	TotalAbsences        int64                    `json:"total_absences"`
	StudentsWithAbsences int64                    `json:"students_with_absences"`
}

func listAbsences(t *testing.T, app *fiber.App, query string) absenceReport {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/absences"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var env struct {
		Data absenceReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return env.Data
}

func TestListAbsencesFilters(t *testing.T) {
	db := newTestDB(t)
	ctl := NewAttendanceController(db)

	app := fiber.New()
	app.Get("/absences", ctl.ListAbsences)

	bus1 := uuid.New()
	bus2 := uuid.New()
	seedAbsence(t, db, bus1, "2026-03-16", "morning", constants.BusGroupA)
	seedAbsence(t, db, bus1, "2026-03-16", "evening", constants.BusGroupA)
	seedAbsence(t, db, bus2, "2026-03-17", "morning", constants.BusGroupB)

	assert.Len(t, listAbsences(t, app, "").Absences, 3)
	assert.Len(t, listAbsences(t, app, "?date=2026-03-16").Absences, 2)
	assert.Len(t, listAbsences(t, app, "?bus_id="+bus1.String()).Absences, 2)
	assert.Len(t, listAbsences(t, app, "?bus_group="+constants.BusGroupB).Absences, 1)
	assert.Len(t, listAbsences(t, app, "?period=morning").Absences, 2)
	assert.Len(t, listAbsences(t, app, "?date=2026-03-16&period=evening&bus_id="+bus1.String()).Absences, 1)

	// Les compteurs globaux ignorent les filtres
	filtered := listAbsences(t, app, "?bus_group="+constants.BusGroupB)
	assert.EqualValues(t, 3, filtered.TotalAbsences)
	assert.EqualValues(t, 3, filtered.StudentsWithAbsences)
}

func TestListAbsencesRejectsBadBusID(t *testing.T) {
	db := newTestDB(t)
	ctl := NewAttendanceController(db)

	app := fiber.New()
	app.Get("/absences", ctl.ListAbsences)

	resp, err := app.Test(httptest.NewRequest("GET", "/absences?bus_id=pas-un-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
