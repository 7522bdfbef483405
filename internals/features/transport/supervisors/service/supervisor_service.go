package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	driverService "transportscolaire_backend/internals/features/transport/drivers/service"
	"transportscolaire_backend/internals/features/transport/supervisors/dto"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	authService "transportscolaire_backend/internals/features/users/auth/service"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

// Create ouvre le compte superviseur : ligne users + ligne supervisors
// dans la meme transaction.
func Create(db *gorm.DB, req dto.CreateSupervisorRequest) (*dto.SupervisorResponse, error) {
	cin := strings.TrimSpace(req.Cin)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if err := driverService.CheckIdentityFree(db, cin, email, phone, nil); err != nil {
		return nil, err
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec du hash du mot de passe")
	}

	user := userModel.UserModel{
		UserID:        uuid.New(),
		UserType:      constants.RoleSupervisor,
		UserEmail:     email,
		UserPhone:     phone,
		UserCin:       cin,
		UserPassword:  hashed,
		UserFirstName: strings.TrimSpace(req.FirstName),
		UserLastName:  strings.TrimSpace(req.LastName),
		UserStatus:    constants.UserStatusActive,
	}
	sup := supervisorModel.SupervisorModel{
		SupervisorID:     uuid.New(),
		SupervisorUserID: user.UserID,
		SupervisorAge:    req.Age,
		SupervisorSalary: req.Salary,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&sup).Error
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la création du superviseur")
	}

	resp := dto.FromModels(sup, user)
	return &resp, nil
}

// Update modifie le profil superviseur, a cheval sur users et
// supervisors.
func Update(db *gorm.DB, supervisorID uuid.UUID, req dto.UpdateSupervisorRequest) (*dto.SupervisorResponse, error) {
	var sup supervisorModel.SupervisorModel
	if err := db.First(&sup, "supervisor_id = ?", supervisorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Superviseur non trouvé")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du superviseur")
	}
	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", sup.SupervisorUserID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du superviseur")
	}

	if req.Email != nil || req.Phone != nil {
		email, phone := user.UserEmail, user.UserPhone
		if req.Email != nil {
			email = strings.TrimSpace(*req.Email)
		}
		if req.Phone != nil {
			phone = strings.TrimSpace(*req.Phone)
		}
		if err := driverService.CheckIdentityFree(db, "", email, phone, &user.UserID); err != nil {
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

	supUpdates := map[string]interface{}{}
	if req.Age != nil {
		supUpdates["supervisor_age"] = *req.Age
	}
	if req.Salary != nil {
		supUpdates["supervisor_salary"] = *req.Salary
	}

	if len(userUpdates) == 0 && len(supUpdates) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Aucun champ à mettre à jour")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if len(userUpdates) > 0 {
			if err := tx.Model(&user).Updates(userUpdates).Error; err != nil {
				return err
			}
		}
		if len(supUpdates) > 0 {
			if err := tx.Model(&sup).Updates(supUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la mise à jour du superviseur")
	}

	if err := db.First(&sup, "supervisor_id = ?", supervisorID).Error; err == nil {
		db.First(&user, "user_id = ?", sup.SupervisorUserID)
	}
	resp := dto.FromModels(sup, user)
	return &resp, nil
}
