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

	"transportscolaire_backend/internals/configs"
	"transportscolaire_backend/internals/constants"
	database "transportscolaire_backend/internals/databases"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	"transportscolaire_backend/internals/features/users/auth/dto"
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

func seedDriver(t *testing.T, db *gorm.DB, status string) (userModel.UserModel, driverModel.DriverModel) {
	t.Helper()
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	user := userModel.UserModel{
		UserID:        uuid.New(),
		UserType:      constants.RoleDriver,
		UserEmail:     "driver@ecole.ma",
		UserPhone:     "0600000001",
		UserCin:       "AB12345",
		UserPassword:  hash,
		UserFirstName: "Hassan",
		UserLastName:  "Alaoui",
		UserStatus:    status,
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
	return user, driver
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "attendu *fiber.Error, obtenu %T", err)
	return fe.Code
}

func TestRegisterTutorAndLogin(t *testing.T) {
	db := newTestDB(t)
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	reg := dto.RegisterTutorRequest{
		FirstName: "Amina",
		LastName:  "Benali",
		Cin:       "CD67890",
		Phone:     "0611111111",
		Email:     "amina@exemple.ma",
		Password:  "secret123",
		Address:   "12 rue des Écoles, Casablanca",
	}

	created, err := RegisterTutor(db, reg)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleTutor, created.Type)
	assert.Empty(t, created.AccessToken)

	// Connexion par email, telephone ou CIN
	for _, identifier := range []string{reg.Email, reg.Phone, reg.Cin} {
		res, err := LoginTutor(db, dto.LoginRequest{Identifier: identifier, Password: "secret123"})
		require.NoError(t, err, "identifiant %s", identifier)
		assert.Equal(t, created.ID, res.ID)
		assert.NotEmpty(t, res.AccessToken)
	}

	// Mauvais mot de passe
	_, err = LoginTutor(db, dto.LoginRequest{Identifier: reg.Email, Password: "mauvais"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))
}

func TestRegisterTutorDuplicate(t *testing.T) {
	db := newTestDB(t)

	reg := dto.RegisterTutorRequest{
		FirstName: "Amina",
		LastName:  "Benali",
		Cin:       "CD67890",
		Phone:     "0611111111",
		Email:     "amina@exemple.ma",
		Password:  "secret123",
		Address:   "Casablanca",
	}
	_, err := RegisterTutor(db, reg)
	require.NoError(t, err)

	_, err = RegisterTutor(db, reg)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestLoginDriverStatusGating(t *testing.T) {
	t.Run("licencié", func(t *testing.T) {
		db := newTestDB(t)
		seedDriver(t, db, constants.UserStatusFired)

		_, err := LoginDriver(db, dto.LoginRequest{Identifier: "driver@ecole.ma", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
		assert.Contains(t, err.Error(), "désactivé")
	})

	t.Run("suspendu", func(t *testing.T) {
		db := newTestDB(t)
		seedDriver(t, db, constants.UserStatusSuspended)

		_, err := LoginDriver(db, dto.LoginRequest{Identifier: "driver@ecole.ma", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
		assert.Contains(t, err.Error(), "suspendu")
	})

	t.Run("actif", func(t *testing.T) {
		db := newTestDB(t)
		configs.JWTSecret = "test-secret"
		t.Cleanup(func() { configs.JWTSecret = "" })
		_, driver := seedDriver(t, db, constants.UserStatusActive)

		res, err := LoginDriver(db, dto.LoginRequest{Identifier: "AB12345", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, driver.DriverID, res.ID)
		assert.Equal(t, "P-9988", res.LicenseNumber)
	})
}

func TestLoginUnknownIdentifier(t *testing.T) {
	db := newTestDB(t)

	_, err := LoginTutor(db, dto.LoginRequest{Identifier: "inconnu@exemple.ma", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))
	assert.Equal(t, "Identifiant ou mot de passe incorrect", err.(*fiber.Error).Message)
}
