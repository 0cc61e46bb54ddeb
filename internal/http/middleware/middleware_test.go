package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	// Logger usually depends on RequestID for request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// Verify log output
	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestRequestID_TooLong(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	resp, _ := app.Test(req)

	rid := resp.Header.Get(RequestIDHeader)
	assert.Len(t, rid, 36)
}

func TestLogger_ServerError(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var logData map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, "error", logData["level"])
	assert.Equal(t, float64(500), logData["status"])
}

func TestFormsCORS(t *testing.T) {
	app := fiber.New()
	app.Use(FormsCORS())
	app.Post("/forms/contact", func(c *fiber.Ctx) error {
		return fiber.ErrBadRequest
	})

	resp, _ := app.Test(httptest.NewRequest("POST", "/forms/contact", nil))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Accept", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestAllowedHosts(t *testing.T) {
	tests := []struct {
		name   string
		hosts  []string
		debug  bool
		host   string
		status int
	}{
		{name: "wildcard", hosts: []string{"*"}, host: "anything.test", status: fiber.StatusOK},
		{name: "exact", hosts: []string{"clinic.uz"}, host: "clinic.uz", status: fiber.StatusOK},
		{name: "exact with port", hosts: []string{"clinic.uz"}, host: "clinic.uz:8080", status: fiber.StatusOK},
		{name: "subdomain", hosts: []string{".clinic.uz"}, host: "www.clinic.uz", status: fiber.StatusOK},
		{name: "bare domain of suffix", hosts: []string{".clinic.uz"}, host: "clinic.uz", status: fiber.StatusOK},
		{name: "rejected", hosts: []string{"clinic.uz"}, host: "evil.test", status: fiber.StatusBadRequest},
		{name: "debug accepts all", hosts: []string{"clinic.uz"}, debug: true, host: "evil.test", status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(AllowedHosts(tt.hosts, tt.debug))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			req := httptest.NewRequest("GET", "/", nil)
			req.Host = tt.host
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
