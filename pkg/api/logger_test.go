package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRecordsRequest(t *testing.T) {
	var output bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&output)
	t.Cleanup(func() { log.Logger = previous })

	app := fiber.New()
	app.Use(NewLogger())
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})

	request := httptest.NewRequest("GET", "/teapot", nil)
	request.Header.Set("CF-Connecting-IP", "203.0.113.7")

	response, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, response.StatusCode)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(output.String())), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(fiber.StatusTeapot), entry["status"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/teapot", entry["path"])
	assert.Equal(t, "203.0.113.7", entry["ip"])
	assert.IsType(t, "", entry["latency"])
}
