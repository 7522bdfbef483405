package service

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"transportscolaire_backend/internals/configs"
)

const accessTTLDefault = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET non defini")
	}
	return secret, nil
}

// GenerateAccessToken signe un token portant l'identite complete de
// l'acteur : compte users, ligne d'extension du role, et role.
func GenerateAccessToken(userID, actorID uuid.UUID, role string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"actor_id": actorID.String(),
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTLDefault).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
