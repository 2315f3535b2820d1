package server_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"asset-editor/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default", 0, 256 * 1024},
		{"Negative", -1, 256 * 1024},
		{"Custom", 8, 8 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitKB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestNewApp(t *testing.T) {
	app := server.NewApp(server.Config{BodyLimitKB: 1})
	app.Post("/echo", func(c *fiber.Ctx) error {
		var body struct {
			Value string `json:"value"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(body)
	})

	req := httptest.NewRequest("POST", "/echo", strings.NewReader(`{"value":"Red Potion"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"value":"Red Potion"}`, string(data))

	big := `{"value":"` + strings.Repeat("x", 2048) + `"}`
	req = httptest.NewRequest("POST", "/echo", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}
