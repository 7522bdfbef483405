// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"transportscolaire_backend/internals/configs"
)

// AuthMiddleware verifie le token Bearer et place l'identite de l'acteur
// dans les Locals (user_id, actor_id, role). L'identite metier vient
// toujours du token, jamais du payload client.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vide")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("methode de signature inattendue")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, _ := claims["user_id"].(string)
		actorID, _ := claims["actor_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid claims")
		}

		c.Locals("user_id", userID)
		c.Locals("actor_id", actorID)
		c.Locals("role", role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, p) && len(auth) > len(p) {
		return strings.TrimSpace(auth[len(p):]), nil
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

// validateTokenExpiry tolere une petite derive d'horloge (leeway).
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("claim exp manquant")
	}
	if time.Now().Add(-leeway).Unix() > int64(exp) {
		return errors.New("token expire")
	}
	return nil
}
