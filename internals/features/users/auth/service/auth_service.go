package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"transportscolaire_backend/internals/constants"
	driverModel "transportscolaire_backend/internals/features/transport/drivers/model"
	supervisorModel "transportscolaire_backend/internals/features/transport/supervisors/model"
	"transportscolaire_backend/internals/features/users/auth/dto"
	userModel "transportscolaire_backend/internals/features/users/user/model"
)

const (
	msgBadCredentials   = "Identifiant ou mot de passe incorrect"
	msgAccountFired     = "Votre compte a été désactivé. Contactez l'administration."
	msgAccountSuspended = "Votre compte est suspendu. Contactez l'administration."
)

/* ==========================
   Lookups
========================== */

// findUserByIdentifier cherche un compte d'un role donne par l'un des
// champs acceptes (semantique OR, comme le front envoie un seul champ
// "identifier").
func findUserByIdentifier(db *gorm.DB, role string, identifier string, fields []string) (*userModel.UserModel, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Identifiant et mot de passe requis")
	}

	q := db.Where("user_type = ?", role)
	or := db.Session(&gorm.Session{NewDB: true})
	cond := or
	for i, f := range fields {
		if i == 0 {
			cond = or.Where(f+" = ?", identifier)
		} else {
			cond = cond.Or(f+" = ?", identifier)
		}
	}
	q = q.Where(cond)

	var user userModel.UserModel
	if err := q.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, msgBadCredentials)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la connexion")
	}
	return &user, nil
}

// checkAccountStatus applique le gating de statut. Le statut 'fired'
// d'un chauffeur a son propre message, distinct de la suspension.
func checkAccountStatus(user *userModel.UserModel) error {
	if user.UserStatus == constants.UserStatusFired {
		return fiber.NewError(fiber.StatusForbidden, msgAccountFired)
	}
	if user.UserStatus != constants.UserStatusActive {
		return fiber.NewError(fiber.StatusForbidden, msgAccountSuspended)
	}
	return nil
}

func verifyPassword(user *userModel.UserModel, plain string) error {
	if err := CheckPasswordHash(user.UserPassword, plain); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, msgBadCredentials)
	}
	return nil
}

/* ==========================
   LOGIN par role
========================== */

func LoginAdmin(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var admin userModel.AdminModel
	if err := db.Where("admin_username = ?", strings.TrimSpace(req.Identifier)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, msgBadCredentials)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la connexion")
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ? AND user_type = ?", admin.AdminUserID, constants.RoleAdmin).First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, msgBadCredentials)
	}

	if err := checkAccountStatus(&user); err != nil {
		return nil, err
	}
	if err := verifyPassword(&user, req.Password); err != nil {
		return nil, err
	}

	token, err := GenerateAccessToken(user.UserID, admin.AdminID, constants.RoleAdmin)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la génération du token")
	}

	return &dto.LoginResponse{
		ID:          admin.AdminID,
		UserID:      user.UserID,
		Type:        constants.RoleAdmin,
		Username:    admin.AdminUsername,
		Email:       user.UserEmail,
		FirstName:   user.UserFirstName,
		LastName:    user.UserLastName,
		Status:      user.UserStatus,
		AccessToken: token,
	}, nil
}

func LoginTutor(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := findUserByIdentifier(db, constants.RoleTutor, req.Identifier,
		[]string{"user_email", "user_phone", "user_cin"})
	if err != nil {
		return nil, err
	}
	if err := checkAccountStatus(user); err != nil {
		return nil, err
	}
	if err := verifyPassword(user, req.Password); err != nil {
		return nil, err
	}

	var tutor userModel.TutorModel
	if err := db.Where("tutor_user_id = ?", user.UserID).First(&tutor).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la connexion")
	}

	token, err := GenerateAccessToken(user.UserID, tutor.TutorID, constants.RoleTutor)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la génération du token")
	}

	return &dto.LoginResponse{
		ID:          tutor.TutorID,
		UserID:      user.UserID,
		Type:        constants.RoleTutor,
		Email:       user.UserEmail,
		Phone:       user.UserPhone,
		Cin:         user.UserCin,
		FirstName:   user.UserFirstName,
		LastName:    user.UserLastName,
		Status:      user.UserStatus,
		Address:     tutor.TutorAddress,
		AccessToken: token,
	}, nil
}

func LoginDriver(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := findUserByIdentifier(db, constants.RoleDriver, req.Identifier,
		[]string{"user_email", "user_phone", "user_cin"})
	if err != nil {
		return nil, err
	}
	if err := checkAccountStatus(user); err != nil {
		return nil, err
	}
	if err := verifyPassword(user, req.Password); err != nil {
		return nil, err
	}

	var driver driverModel.DriverModel
	if err := db.Where("driver_user_id = ?", user.UserID).First(&driver).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la connexion")
	}

	token, err := GenerateAccessToken(user.UserID, driver.DriverID, constants.RoleDriver)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la génération du token")
	}

	return &dto.LoginResponse{
		ID:            driver.DriverID,
		UserID:        user.UserID,
		Type:          constants.RoleDriver,
		Email:         user.UserEmail,
		Phone:         user.UserPhone,
		Cin:           user.UserCin,
		FirstName:     user.UserFirstName,
		LastName:      user.UserLastName,
		Status:        user.UserStatus,
		LicenseNumber: driver.DriverLicenseNumber,
		Age:           driver.DriverAge,
		Salary:        driver.DriverSalary,
		AccidentCount: driver.DriverAccidentCount,
		AccessToken:   token,
	}, nil
}

func LoginSupervisor(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := findUserByIdentifier(db, constants.RoleSupervisor, req.Identifier,
		[]string{"user_email", "user_phone"})
	if err != nil {
		return nil, err
	}
	if err := checkAccountStatus(user); err != nil {
		return nil, err
	}
	if err := verifyPassword(user, req.Password); err != nil {
		return nil, err
	}

	var sup supervisorModel.SupervisorModel
	if err := db.Where("supervisor_user_id = ?", user.UserID).First(&sup).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la connexion")
	}

	token, err := GenerateAccessToken(user.UserID, sup.SupervisorID, constants.RoleSupervisor)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de la génération du token")
	}

	return &dto.LoginResponse{
		ID:          sup.SupervisorID,
		UserID:      user.UserID,
		Type:        constants.RoleSupervisor,
		Email:       user.UserEmail,
		Phone:       user.UserPhone,
		FirstName:   user.UserFirstName,
		LastName:    user.UserLastName,
		Status:      user.UserStatus,
		Age:         sup.SupervisorAge,
		Salary:      sup.SupervisorSalary,
		AccessToken: token,
	}, nil
}

/* ==========================
   REGISTER (tuteur)
========================== */

func RegisterTutor(db *gorm.DB, req dto.RegisterTutorRequest) (*dto.LoginResponse, error) {
	cin := strings.TrimSpace(req.Cin)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	// Unicité CIN / email / téléphone, avec le champ en faute dans le message
	var existing userModel.UserModel
	err := db.Where("user_cin = ? OR user_email = ? OR user_phone = ?", cin, email, phone).First(&existing).Error
	if err == nil {
		field := "CIN"
		switch {
		case existing.UserEmail == email:
			field = "Email"
		case existing.UserPhone == phone:
			field = "Téléphone"
		}
		return nil, fiber.NewError(fiber.StatusConflict, field+" déjà utilisé")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'inscription")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Échec du hash du mot de passe")
	}

	user := userModel.UserModel{
		UserID:        uuid.New(),
		UserType:      constants.RoleTutor,
		UserEmail:     email,
		UserPhone:     phone,
		UserCin:       cin,
		UserPassword:  hashed,
		UserFirstName: strings.TrimSpace(req.FirstName),
		UserLastName:  strings.TrimSpace(req.LastName),
		UserStatus:    constants.UserStatusActive,
	}
	tutor := userModel.TutorModel{
		TutorID:      uuid.New(),
		TutorUserID:  user.UserID,
		TutorAddress: strings.TrimSpace(req.Address),
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&tutor).Error
	}); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Un compte existe déjà avec ces informations")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur lors de l'inscription")
	}

	return &dto.LoginResponse{
		ID:        tutor.TutorID,
		UserID:    user.UserID,
		Type:      constants.RoleTutor,
		Email:     user.UserEmail,
		Phone:     user.UserPhone,
		Cin:       user.UserCin,
		FirstName: user.UserFirstName,
		LastName:  user.UserLastName,
		Status:    user.UserStatus,
		Address:   tutor.TutorAddress,
	}, nil
}
