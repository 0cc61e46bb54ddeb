package handler

import (
	"bytes"
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"formsapi/internal/service"
)

func writeReviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "submission not found")
	case errors.Is(err, service.ErrNoCV):
		return writeError(c, fiber.StatusNotFound, "NO_CV", "application has no cv attached")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func writeQueryError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"request_id": requestIDFromCtx(c),
		"error": errorEnvelope{
			Code:    "INVALID_QUERY",
			Message: "invalid query parameters",
		},
		"fields": queryErrors(err),
	})
}

func parseContactQuery(c *fiber.Ctx) (contactQuery, error) {
	var q contactQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	return q, validate.Struct(q)
}

func parseJobApplicationQuery(c *fiber.Ctx) (jobApplicationQuery, error) {
	var q jobApplicationQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	return q, validate.Struct(q)
}

// ListContacts godoc
// @Summary      List contact submissions
// @Tags         admin
// @Produce      json
// @Param        position  query  string  false  "Reason code"
// @Param        country   query  string  false  "Country (case-insensitive)"
// @Param        privacy1  query  bool    false  "Privacy consent"
// @Param        privacy2  query  bool    false  "Newsletter consent"
// @Param        from      query  string  false  "First day (YYYY-MM-DD)"
// @Param        to        query  string  false  "Last day (YYYY-MM-DD)"
// @Param        q         query  string  false  "Search names, email, phone, city, country"
// @Param        limit     query  int     false  "Page size (default 50)"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  service.ContactListResult
// @Failure      400  {object}  errorPayload
// @Security     BasicAuth
// @Router       /admin/contacts [get]
func ListContacts(svc service.ReviewService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseContactQuery(c)
		if err != nil {
			return writeQueryError(c, err)
		}
		res, err := svc.ListContacts(c.UserContext(), q.filter(loc), q.Limit, q.Offset)
		if err != nil {
			return writeReviewError(c, err)
		}
		return c.JSON(res)
	}
}

// ExportContactsCSV godoc
// @Summary      Export contact submissions as CSV
// @Tags         admin
// @Produce      text/csv
// @Success      200  {string}  string
// @Security     BasicAuth
// @Router       /admin/contacts/export.csv [get]
func ExportContactsCSV(svc service.ReviewService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseContactQuery(c)
		if err != nil {
			return writeQueryError(c, err)
		}
		var buf bytes.Buffer
		if err := svc.ExportContactsCSV(c.UserContext(), q.filter(loc), &buf); err != nil {
			return writeReviewError(c, err)
		}
		name := "contact_submissions_" + time.Now().In(loc).Format("20060102_150405") + ".csv"
		c.Attachment(name)
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return c.Send(buf.Bytes())
	}
}

// GetContact godoc
// @Summary      Get a contact submission
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Submission ID"
// @Success      200  {object}  model.ContactSubmission
// @Failure      404  {object}  errorPayload
// @Security     BasicAuth
// @Router       /admin/contacts/{id} [get]
func GetContact(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.GetContact(c.UserContext(), id)
		if err != nil {
			return writeReviewError(c, err)
		}
		return c.JSON(rec)
	}
}

// ListJobApplications godoc
// @Summary      List job applications
// @Tags         admin
// @Produce      json
// @Param        position  query  string  false  "Position code"
// @Param        privacy   query  bool    false  "Privacy consent"
// @Param        has_cv    query  bool    false  "CV attached"
// @Param        from      query  string  false  "First day (YYYY-MM-DD)"
// @Param        to        query  string  false  "Last day (YYYY-MM-DD)"
// @Param        q         query  string  false  "Search names, email, phone"
// @Param        limit     query  int     false  "Page size (default 50)"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  service.JobApplicationListResult
// @Failure      400  {object}  errorPayload
// @Security     BasicAuth
// @Router       /admin/job-applications [get]
func ListJobApplications(svc service.ReviewService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseJobApplicationQuery(c)
		if err != nil {
			return writeQueryError(c, err)
		}
		res, err := svc.ListJobApplications(c.UserContext(), q.filter(loc), q.Limit, q.Offset)
		if err != nil {
			return writeReviewError(c, err)
		}
		return c.JSON(res)
	}
}

// GetJobApplication godoc
// @Summary      Get a job application
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  model.JobApplication
// @Failure      404  {object}  errorPayload
// @Security     BasicAuth
// @Router       /admin/job-applications/{id} [get]
func GetJobApplication(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.GetJobApplication(c.UserContext(), id)
		if err != nil {
			return writeReviewError(c, err)
		}
		return c.JSON(rec)
	}
}

// DownloadCV godoc
// @Summary      Redirect to a short-lived CV download link
// @Tags         admin
// @Param        id  path  string  true  "Application ID"
// @Success      200  {file}  file  "Streamed from local media"
// @Success      302  {string}  string  "Redirect to a presigned URL"
// @Failure      404  {object}  errorPayload
// @Security     BasicAuth
// @Router       /admin/job-applications/{id}/cv [get]
func DownloadCV(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.CVDownloadURL(c.UserContext(), id)
		if err != nil {
			return writeReviewError(c, err)
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		if isAbsoluteURL(u) {
			return c.Redirect(u, fiber.StatusFound)
		}

		// Local media is not public outside DEBUG, so stream it here.
		f, err := svc.OpenCV(c.UserContext(), id)
		if err != nil {
			return writeReviewError(c, err)
		}
		c.Attachment(f.Filename)
		c.Set(fiber.HeaderContentType, f.ContentType)
		return c.SendStream(f.Body, int(f.Size))
	}
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
