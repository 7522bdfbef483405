package service

import (
	"fmt"
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
	"transportscolaire_backend/internals/features/incidents/accidents/dto"
	notificationModel "transportscolaire_backend/internals/features/notifications/model"
	notifService "transportscolaire_backend/internals/features/notifications/service"
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

func seedDriverWithBus(t *testing.T, db *gorm.DB) driverModel.DriverModel {
	t.Helper()

	user := userModel.UserModel{
		UserID:        uuid.New(),
		UserType:      constants.RoleDriver,
		UserEmail:     "driver@ecole.ma",
		UserPassword:  "hash",
		UserFirstName: "Hassan",
		UserLastName:  "Alaoui",
		UserStatus:    constants.UserStatusActive,
	}
	require.NoError(t, db.Create(&user).Error)

	driver := driverModel.DriverModel{
		DriverID:            uuid.New(),
		DriverUserID:        user.UserID,
		DriverLicenseNumber: "P-9988",
		DriverAge:           35,
		DriverSalary:        4000,
	}
	require.NoError(t, db.Create(&driver).Error)

	bus := busModel.BusModel{
		BusID:        uuid.New(),
		BusCode:      "BUS-01",
		BusMatricule: "1234-A-6",
		BusCapacity:  40,
		BusDriverID:  &driver.DriverID,
		BusStatus:    "en_service",
	}
	require.NoError(t, db.Create(&bus).Error)

	return driver
}

func report(t *testing.T, db *gorm.DB, driverID uuid.UUID) *dto.ReportResult {
	t.Helper()
	result, err := Report(db, driverID, dto.ReportAccidentRequest{
		Date:     "2026-03-16",
		Report:   "Accrochage léger au rond-point",
		Severity: "leger",
	})
	require.NoError(t, err)
	return result
}

func TestReportRecomputesCounter(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriverWithBus(t, db)

	r1 := report(t, db, driver.DriverID)
	assert.Equal(t, 1, r1.AccidentCount)
	assert.False(t, r1.Escalated)

	r2 := report(t, db, driver.DriverID)
	assert.Equal(t, 2, r2.AccidentCount)
	assert.False(t, r2.Escalated)

	// Le compteur persiste sur la ligne chauffeur
	var persisted driverModel.DriverModel
	require.NoError(t, db.First(&persisted, "driver_id = ?", driver.DriverID).Error)
	assert.Equal(t, 2, persisted.DriverAccidentCount)
}

func TestReportEscalatesAtThreshold(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriverWithBus(t, db)

	report(t, db, driver.DriverID)
	report(t, db, driver.DriverID)
	r3 := report(t, db, driver.DriverID)

	assert.Equal(t, constants.AccidentDismissalThreshold, r3.AccidentCount)
	assert.True(t, r3.Escalated)

	// Avertissement d'escalade adresse au chauffeur
	var notifs []notificationModel.NotificationModel
	require.NoError(t, db.
		Where("notification_recipient_id = ?", driver.DriverID.String()).
		Order("notification_created_at ASC").
		Find(&notifs).Error)
	require.Len(t, notifs, 3)
	last := notifs[len(notifs)-1]
	assert.Contains(t, last.NotificationMessage, fmt.Sprintf("%d accidents", constants.AccidentDismissalThreshold))
	assert.Contains(t, last.NotificationMessage, "Licenciement")
	assert.Contains(t, last.NotificationMessage, fmt.Sprintf("%d DH", constants.AccidentFineAmount))
}

func TestReportNotifiesAdmin(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriverWithBus(t, db)

	report(t, db, driver.DriverID)

	var notif notificationModel.NotificationModel
	require.NoError(t, db.First(&notif,
		"notification_recipient_id = ? AND notification_type = ?",
		notifService.AdminRecipient, "accident").Error)
	assert.Equal(t, "Accident déclaré", notif.NotificationTitle)
	assert.Contains(t, notif.NotificationMessage, "Hassan Alaoui")
	assert.Contains(t, notif.NotificationMessage, "1 accident(s)")
}

func TestRecordByAdminCountsAndNotifiesDriverOnly(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriverWithBus(t, db)

	var bus busModel.BusModel
	require.NoError(t, db.First(&bus, "bus_driver_id = ?", driver.DriverID).Error)

	result, err := RecordByAdmin(db, dto.RecordAccidentRequest{
		DriverID: driver.DriverID,
		BusID:    bus.BusID,
		Date:     "2026-03-16",
		Report:   "Rétroviseur arraché en manœuvre au dépôt",
		Severity: "moyen",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AccidentCount)

	// Le compteur est recalcule comme pour une declaration chauffeur
	var persisted driverModel.DriverModel
	require.NoError(t, db.First(&persisted, "driver_id = ?", driver.DriverID).Error)
	assert.Equal(t, 1, persisted.DriverAccidentCount)

	// Le chauffeur est notifie ; l'administration ne se notifie pas elle-meme
	var driverNotifs int64
	db.Model(&notificationModel.NotificationModel{}).
		Where("notification_recipient_id = ?", driver.DriverID.String()).
		Count(&driverNotifs)
	assert.EqualValues(t, 1, driverNotifs)

	var adminNotifs int64
	db.Model(&notificationModel.NotificationModel{}).
		Where("notification_recipient_id = ?", notifService.AdminRecipient).
		Count(&adminNotifs)
	assert.EqualValues(t, 0, adminNotifs)
}

func TestRecordByAdminSharesCounterWithDriverReports(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriverWithBus(t, db)

	var bus busModel.BusModel
	require.NoError(t, db.First(&bus, "bus_driver_id = ?", driver.DriverID).Error)

	report(t, db, driver.DriverID)
	report(t, db, driver.DriverID)

	// Troisieme accident saisi par l'administration : meme seuil d'escalade
	result, err := RecordByAdmin(db, dto.RecordAccidentRequest{
		DriverID: driver.DriverID,
		BusID:    bus.BusID,
		Report:   "Collision à l'arrêt avec un véhicule stationné",
		Severity: "grave",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.AccidentDismissalThreshold, result.AccidentCount)
	assert.True(t, result.Escalated)
}

func TestRecordByAdminUnknownDriverOrBus(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriverWithBus(t, db)

	var bus busModel.BusModel
	require.NoError(t, db.First(&bus, "bus_driver_id = ?", driver.DriverID).Error)

	_, err := RecordByAdmin(db, dto.RecordAccidentRequest{
		DriverID: uuid.New(),
		BusID:    bus.BusID,
		Report:   "Accrochage léger au rond-point",
		Severity: "leger",
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	_, err = RecordByAdmin(db, dto.RecordAccidentRequest{
		DriverID: driver.DriverID,
		BusID:    uuid.New(),
		Report:   "Accrochage léger au rond-point",
		Severity: "leger",
	})
	require.Error(t, err)
	fe, ok = err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestReportWithoutBus(t *testing.T) {
	db := newTestDB(t)

	_, err := Report(db, uuid.New(), dto.ReportAccidentRequest{
		Report:   "Accrochage léger au rond-point",
		Severity: "leger",
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}
