package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"formsapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// formsPayload is the response body of the public form endpoints.
type formsPayload struct {
	Success      bool              `json:"success"`
	SubmissionID string            `json:"submission_id,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	return middleware.GetRequestID(c)
}

// parseID validates the :id route parameter as a UUID.
func parseID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeFormsError writes the forms envelope with a single "general" message.
func writeFormsError(c *fiber.Ctx, status int, message string) error {
	middleware.SetFormsCORS(c)
	return c.Status(status).JSON(formsPayload{
		Success: false,
		Errors:  map[string]string{"general": message},
	})
}

func isFormsPath(p string) bool {
	return p == "/forms" || strings.HasPrefix(p, "/forms/")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Form endpoints keep their own envelope so the site scripts can read it.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		if isFormsPath(c.Path()) {
			switch status {
			case fiber.StatusBadRequest:
				return writeFormsError(c, status, "bad request")
			case fiber.StatusNotFound:
				return writeFormsError(c, status, "not found")
			case fiber.StatusMethodNotAllowed:
				return writeFormsError(c, status, "method not allowed")
			case fiber.StatusRequestEntityTooLarge:
				return writeFormsError(c, status, "request too large")
			case fiber.StatusTooManyRequests:
				return writeFormsError(c, status, "too many submissions, try again later")
			default:
				return writeFormsError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request too large")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "RATE_LIMITED", "too many requests")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
