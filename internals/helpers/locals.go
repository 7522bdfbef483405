package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Le middleware auth remplit ces Locals depuis les claims JWT :
//   user_id  -> id de la ligne users
//   actor_id -> id de la ligne d'extension du role (tutors/drivers/supervisors/admins)
//   role     -> discriminateur de role
const (
	LocUserID  = "user_id"
	LocActorID = "actor_id"
	LocRole    = "role"
)

func uuidFromLocal(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentification requise")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentification requise")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentification requise")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Identifiant du token invalide")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Identifiant du token invalide")
	}
}

// GetUserIDFromToken retourne l'id users du compte connecte.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocal(c, LocUserID)
}

// GetActorIDFromToken retourne l'id de la ligne d'extension du role
// (tutor_id pour un tuteur, driver_id pour un chauffeur, ...).
// Toute autorisation metier se fait sur cet id, jamais sur un id fourni
// par le client.
func GetActorIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocal(c, LocActorID)
}

// GetRoleFromToken retourne le role porte par le token.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	if v, ok := c.Locals(LocRole).(string); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Authentification requise")
}
