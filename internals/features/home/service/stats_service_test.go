package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"transportscolaire_backend/internals/constants"
	database "transportscolaire_backend/internals/databases"
	accidentModel "transportscolaire_backend/internals/features/incidents/accidents/model"
	studentModel "transportscolaire_backend/internals/features/school/students/model"
	busModel "transportscolaire_backend/internals/features/transport/buses/model"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
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

func seedStudent(t *testing.T, db *gorm.DB, first, last, class, gender, status string, absences int, busID *uuid.UUID) {
	t.Helper()
	student := studentModel.StudentModel{
		StudentID:               uuid.New(),
		StudentTutorID:          uuid.New(),
		StudentFirstName:        first,
		StudentLastName:         last,
		StudentClass:            class,
		StudentAge:              8,
		StudentGender:           gender,
		StudentZone:             "Maarif",
		StudentParentRelation:   "pere",
		StudentTransportType:    "aller-retour",
		StudentSubscriptionType: constants.SubscriptionMonthly,
		StudentStatus:           status,
		StudentPaymentStatus:    "unpaid",
		StudentAbsenceCount:     absences,
		StudentBusID:            busID,
	}
	require.NoError(t, db.Create(&student).Error)
}

func TestBusUsageComputesOccupancy(t *testing.T) {
	db := newTestDB(t)

	bus := busModel.BusModel{
		BusID:        uuid.New(),
		BusCode:      "BUS-01",
		BusMatricule: "1234-A-6",
		BusCapacity:  40,
		BusStatus:    "en_service",
	}
	require.NoError(t, db.Create(&bus).Error)

	empty := busModel.BusModel{
		BusID:        uuid.New(),
		BusCode:      "BUS-02",
		BusMatricule: "5678-B-6",
		BusCapacity:  30,
		BusStatus:    "en_service",
	}
	require.NoError(t, db.Create(&empty).Error)

	seedStudent(t, db, "Yassine", "Benali", "CE2", "garcon", "approved", 0, &bus.BusID)
	seedStudent(t, db, "Lina", "Benali", "CE1", "fille", "approved", 0, &bus.BusID)
	// Un eleve en attente ne compte pas dans l'occupation
	seedStudent(t, db, "Omar", "Tazi", "CM1", "garcon", "pending", 0, &bus.BusID)

	usage, err := BusUsage(db)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	// Bus les plus charges en tete
	assert.Equal(t, "BUS-01", usage[0].Name)
	assert.EqualValues(t, 2, usage[0].Students)
	assert.Equal(t, 40, usage[0].Capacity)
	assert.Equal(t, 5.0, usage[0].OccupancyRate)

	assert.Equal(t, "BUS-02", usage[1].Name)
	assert.EqualValues(t, 0, usage[1].Students)
	assert.Equal(t, 0.0, usage[1].OccupancyRate)
}

func TestStudentsByClassAndGender(t *testing.T) {
	db := newTestDB(t)

	seedStudent(t, db, "Yassine", "Benali", "CE2", "garcon", "approved", 0, nil)
	seedStudent(t, db, "Lina", "Benali", "CE2", "fille", "approved", 0, nil)
	seedStudent(t, db, "Omar", "Tazi", "CM1", "garcon", "approved", 0, nil)
	// Les non-approuves restent hors des repartitions
	seedStudent(t, db, "Nour", "Idrissi", "CE2", "fille", "pending", 0, nil)

	byClass, err := StudentsByClass(db)
	require.NoError(t, err)
	require.Len(t, byClass, 2)
	assert.Equal(t, "CE2", byClass[0].Name)
	assert.EqualValues(t, 2, byClass[0].Count)
	assert.Equal(t, "CM1", byClass[1].Name)
	assert.EqualValues(t, 1, byClass[1].Count)

	gender, err := Gender(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, gender.Boys)
	assert.EqualValues(t, 1, gender.Girls)
}

func TestDriverAccidentsOnlyListsAccidentedDrivers(t *testing.T) {
	db := newTestDB(t)

	makeDriver := func(first, last string) uuid.UUID {
		user := userModel.UserModel{
			UserID:        uuid.New(),
			UserType:      constants.RoleDriver,
			UserEmail:     first + "@ecole.ma",
			UserPassword:  "hash",
			UserFirstName: first,
			UserLastName:  last,
			UserStatus:    constants.UserStatusActive,
		}
		require.NoError(t, db.Create(&user).Error)
		driver := driverModel.DriverModel{
			DriverID:            uuid.New(),
			DriverUserID:        user.UserID,
			DriverLicenseNumber: "P-" + first,
			DriverAge:           35,
			DriverSalary:        4000,
		}
		require.NoError(t, db.Create(&driver).Error)
		return driver.DriverID
	}

	accidented := makeDriver("Hassan", "Alaoui")
	makeDriver("Karim", "Fassi")

	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&accidentModel.AccidentModel{
			AccidentID:       uuid.New(),
			AccidentDriverID: accidented,
			AccidentBusID:    uuid.New(),
			AccidentDate:     "2026-03-16",
			AccidentReport:   "Accrochage léger au rond-point",
			AccidentSeverity: "leger",
		}).Error)
	}

	rows, err := DriverAccidents(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hassan Alaoui", rows[0].Name)
	assert.EqualValues(t, 2, rows[0].Accidents)
}

func TestTopAbsentStudentsIsCappedAtFive(t *testing.T) {
	db := newTestDB(t)

	names := []string{"Yassine", "Lina", "Omar", "Nour", "Salma", "Adam"}
	for i, n := range names {
		seedStudent(t, db, n, "Benali", "CE2", "garcon", "approved", i+1, nil)
	}
	seedStudent(t, db, "Mehdi", "Tazi", "CE2", "garcon", "approved", 0, nil)

	rows, err := TopAbsentStudents(db)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Adam Benali", rows[0].Name)
	assert.Equal(t, 6, rows[0].Absences)
	// Les eleves sans absence n'apparaissent pas
	for _, r := range rows {
		assert.Greater(t, r.Absences, 0)
	}
}
