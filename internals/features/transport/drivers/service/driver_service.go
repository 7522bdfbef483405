package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	authService "transportscolaire_backend/internals/features/users/auth/service"
	"transportscolaire_backend/internals/features/transport/drivers/dto"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

// CheckIdentityFree verifie qu'aucun compte n'utilise deja le CIN,
// l'email ou le telephone fournis. excludeUserID exclut le compte en
// cours de modification.
func CheckIdentityFree(db *gorm.DB, cin, email, phone string, excludeUserID *uuid.UUID) error {
	q := db.Where("user_cin = ? OR user_email = ? OR user_phone = ?", cin, email, phone)
	if excludeUserID != nil {
		q = q.Where("user_id <> ?", *excludeUserID)
	}

	var existing userModel.UserModel
	err := q.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la vérification du compte")
	}

	field := "CIN"
	switch {
	case email != "" && existing.UserEmail == email:
		field = "Email"
	case phone != "" && existing.UserPhone == phone:
		field = "Téléphone"
	}
	return fiber.NewError(fiber.StatusConflict, field+" déjà utilisé")
}

// Create ouvre le compte chauffeur : ligne users + ligne drivers dans
// la meme transaction.
func Create(db *gorm.DB, req dto.CreateDriverRequest) (*dto.DriverResponse, error) {
	cin := strings.TrimSpace(req.Cin)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if err := CheckIdentityFree(db, cin, email, phone, nil); err != nil {
		return nil, err
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec du hash du mot de passe")
	}

	user := userModel.UserModel{
		UserID:        uuid.New(),
		UserType:      constants.RoleDriver,
		UserEmail:     email,
		UserPhone:     phone,
		UserCin:       cin,
		UserPassword:  hashed,
		UserFirstName: strings.TrimSpace(req.FirstName),
		UserLastName:  strings.TrimSpace(req.LastName),
		UserStatus:    constants.UserStatusActive,
	}
	driver := driverModel.DriverModel{
		DriverID:            uuid.New(),
		DriverUserID:        user.UserID,
		DriverLicenseNumber: req.LicenseNumber,
		DriverAge:           req.Age,
		DriverSalary:        req.Salary,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&driver).Error
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la création du chauffeur")
	}

	resp := dto.FromModels(driver, user)
	return &resp, nil
}

// Update modifie le profil, a cheval sur users et drivers, dans une
// transaction.
func Update(db *gorm.DB, driverID uuid.UUID, req dto.UpdateDriverRequest) (*dto.DriverResponse, error) {
	var driver driverModel.DriverModel
	if err := db.First(&driver, "driver_id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Chauffeur non trouvé")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du chauffeur")
	}
	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", driver.DriverUserID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du chauffeur")
	}

	if req.Email != nil || req.Phone != nil {
		email, phone := user.UserEmail, user.UserPhone
		if req.Email != nil {
			email = strings.TrimSpace(*req.Email)
		}
		if req.Phone != nil {
			phone = strings.TrimSpace(*req.Phone)
		}
		if err := CheckIdentityFree(db, "", email, phone, &user.UserID); err != nil {
			return nil, err
		}
	}

	userUpdates := map[string]interface{}{}
	if req.FirstName != nil {
		userUpdates["user_first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		userUpdates["user_last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		userUpdates["user_email"] = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		userUpdates["user_phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Status != nil {
		userUpdates["user_status"] = *req.Status
	}

	driverUpdates := map[string]interface{}{}
	if req.LicenseNumber != nil {
		driverUpdates["driver_license_number"] = *req.LicenseNumber
	}
	if req.Age != nil {
		driverUpdates["driver_age"] = *req.Age
	}
	if req.Salary != nil {
		driverUpdates["driver_salary"] = *req.Salary
	}

	if len(userUpdates) == 0 && len(driverUpdates) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Aucun champ à mettre à jour")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if len(userUpdates) > 0 {
			if err := tx.Model(&user).Updates(userUpdates).Error; err != nil {
				return err
			}
		}
		if len(driverUpdates) > 0 {
			if err := tx.Model(&driver).Updates(driverUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du chauffeur")
	}

	if err := db.First(&driver, "driver_id = ?", driverID).Error; err == nil {
		db.First(&user, "user_id = ?", driver.DriverUserID)
	}
	resp := dto.FromModels(driver, user)
	return &resp, nil
}
