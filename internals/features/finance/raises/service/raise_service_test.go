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
	"transportscolaire_backend/internals/features/finance/raises/dto"
	notificationModel "transportscolaire_backend/internals/features/notifications/model"
	notifService "transportscolaire_backend/internals/features/notifications/service"
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

func seedDriver(t *testing.T, db *gorm.DB) driverModel.DriverModel {
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
	return driver
}

func TestCreateSnapshotsSalaryAndNotifiesAdmin(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db)

	raise, err := Create(db, driver.DriverID, constants.RoleDriver, dto.CreateRaiseRequest{
		Reasons: "Cinq ans d'ancienneté sans incident",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", raise.RaiseRequestStatus)
	assert.Equal(t, float64(4000), raise.RaiseRequestCurrentSalary)

	var notif notificationModel.NotificationModel
	require.NoError(t, db.First(&notif,
		"notification_recipient_id = ?", notifService.AdminRecipient).Error)
	assert.Equal(t, "Demande d'augmentation", notif.NotificationTitle)
	assert.Contains(t, notif.NotificationMessage, "Hassan Alaoui (Chauffeur)")
}

func TestCreateRejectsSecondPendingRequest(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db)

	_, err := Create(db, driver.DriverID, constants.RoleDriver, dto.CreateRaiseRequest{
		Reasons: "Cinq ans d'ancienneté sans incident",
	})
	require.NoError(t, err)

	_, err = Create(db, driver.DriverID, constants.RoleDriver, dto.CreateRaiseRequest{
		Reasons: "Je retente ma chance cette semaine",
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestResolveDoesNotTouchSalary(t *testing.T) {
	db := newTestDB(t)
	driver := seedDriver(t, db)
	adminID := uuid.New()

	raise, err := Create(db, driver.DriverID, constants.RoleDriver, dto.CreateRaiseRequest{
		Reasons: "Cinq ans d'ancienneté sans incident",
	})
	require.NoError(t, err)

	resolved, err := Resolve(db, raise.RaiseRequestID, adminID, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", resolved.RaiseRequestStatus)

	// Decision purement informative : le salaire ne bouge pas
	var after driverModel.DriverModel
	require.NoError(t, db.First(&after, "driver_id = ?", driver.DriverID).Error)
	assert.Equal(t, float64(4000), after.DriverSalary)

	// Le demandeur est notifie
	var notif notificationModel.NotificationModel
	require.NoError(t, db.First(&notif,
		"notification_recipient_id = ? AND notification_sender_type = ?",
		driver.DriverID.String(), constants.RoleAdmin).Error)
	assert.Contains(t, notif.NotificationMessage, "approuvée")

	// Une demande traitee ne se retraite pas
	_, err = Resolve(db, raise.RaiseRequestID, adminID, "rejected")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}
