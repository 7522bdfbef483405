package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defauts", "", 1, 50, 0},
		{"page et per_page", "?page=3&per_page=20", 3, 20, 40},
		{"alias limit", "?limit=10", 1, 10, 0},
		{"borne haute", "?per_page=500", 1, 200, 0},
		{"valeurs invalides", "?page=-2&per_page=abc", 1, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Paging
			app.Get("/items", func(c *fiber.Ctx) error {
				got = ResolvePaging(c, 50, 200)
				return c.SendStatus(fiber.StatusOK)
			})

			_, err := app.Test(httptest.NewRequest("GET", "/items"+tt.query, nil))
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestEnvelopeShapes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return Success(c, "ça marche", fiber.Map{"x": 1})
	})
	app.Get("/ko", func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusNotFound, "introuvable")
	})
	app.Get("/wrapped", func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusConflict, "déjà traité"))
	})

	t.Run("succes", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var env map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &env))
		assert.Equal(t, "success", env["status"])
		assert.Equal(t, "ça marche", env["message"])
		assert.NotNil(t, env["data"])
	})

	t.Run("erreur", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ko", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var env map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &env))
		assert.Equal(t, "error", env["status"])
	})

	t.Run("fiber error propage son code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/wrapped", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}
