package handler

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"formsapi/internal/http/middleware"
	"formsapi/internal/model"
	"formsapi/internal/normalize"
	"formsapi/internal/service"
	"formsapi/internal/validation"
)

var cvFieldNames = []string{"form_fields[file_cv][]", "form_fields[file_cv]", validation.FieldCV}

// formField reads form_fields[name], falling back to the bare name.
func formField(c *fiber.Ctx, name string) string {
	if v := c.FormValue("form_fields[" + name + "]"); v != "" {
		return v
	}
	return c.FormValue(name)
}

func requestMeta(c *fiber.Ctx) service.RequestMeta {
	referer := c.Get(fiber.HeaderReferer)
	return service.RequestMeta{
		Lang:      normalize.DetectLang(formField(c, "lang"), referer),
		IP:        middleware.ClientIP(c),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Referer:   referer,
	}
}

// cvUpload returns the attached CV, or nil when none was sent.
func cvUpload(c *fiber.Ctx) *model.Upload {
	for _, name := range cvFieldNames {
		fh, err := c.FormFile(name)
		if err != nil || fh == nil {
			continue
		}
		// Browsers submit an empty part for an untouched file input.
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		return newUpload(fh)
	}
	return nil
}

func newUpload(fh *multipart.FileHeader) *model.Upload {
	return &model.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func writeSubmissionError(c *fiber.Ctx, log zerolog.Logger, form string, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(formsPayload{Success: false, Errors: ve.Fields})
	}
	log.Error().
		Err(err).
		Str("event", "submission_failed").
		Str("form", form).
		Str("request_id", middleware.GetRequestID(c)).
		Send()
	return writeFormsError(c, fiber.StatusInternalServerError, "internal server error")
}

// FormsPreflight answers CORS preflight requests.
func FormsPreflight() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// FormsMethodNotAllowed rejects anything but POST and OPTIONS on form endpoints.
func FormsMethodNotAllowed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, "POST, OPTIONS")
		return writeFormsError(c, fiber.StatusMethodNotAllowed, "method not allowed")
	}
}

// SubmitContact godoc
// @Summary      Submit the contact form
// @Tags         forms
// @Accept       multipart/form-data,application/x-www-form-urlencoded
// @Produce      json
// @Param        form_id                  formData  string  false  "Source form id"
// @Param        form_fields[first_name]  formData  string  true   "First name"
// @Param        form_fields[last_name]   formData  string  true   "Last name"
// @Param        form_fields[email]       formData  string  true   "Email"
// @Param        form_fields[phone]       formData  string  true   "Phone"
// @Param        form_fields[position]    formData  string  true   "Reason code or label"
// @Param        form_fields[city]        formData  string  true   "City"
// @Param        form_fields[province]    formData  string  true   "Province"
// @Param        form_fields[country]     formData  string  true   "Country"
// @Param        form_fields[message]     formData  string  false  "Message"
// @Param        form_fields[days]        formData  string  false  "Preferred days"
// @Param        form_fields[privacy1]    formData  string  true   "Privacy policy consent"
// @Param        form_fields[privacy2]    formData  string  true   "Newsletter consent"
// @Param        form_fields[lang]        formData  string  false  "en, ru or uz"
// @Success      201  {object}  formsPayload
// @Failure      400  {object}  formsPayload
// @Failure      429  {object}  formsPayload
// @Failure      500  {object}  formsPayload
// @Router       /forms/contact [post]
func SubmitContact(svc service.SubmissionService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := service.ContactRequest{
			Form: validation.ContactForm{
				FormID:    c.FormValue("form_id"),
				FirstName: formField(c, "first_name"),
				LastName:  formField(c, "last_name"),
				Email:     formField(c, "email"),
				Phone:     formField(c, "phone"),
				Position:  formField(c, "position"),
				City:      formField(c, "city"),
				Province:  formField(c, "province"),
				Country:   formField(c, "country"),
				Message:   formField(c, "message"),
				Days:      formField(c, "days"),
				Privacy1:  formField(c, "privacy1"),
				Privacy2:  formField(c, "privacy2"),
			},
			Meta: requestMeta(c),
		}

		rec, err := svc.SubmitContact(c.UserContext(), req)
		if err != nil {
			return writeSubmissionError(c, log, "contact", err)
		}
		return c.Status(fiber.StatusCreated).JSON(formsPayload{Success: true, SubmissionID: rec.ID})
	}
}

// SubmitJobApplication godoc
// @Summary      Submit the job application form
// @Tags         forms
// @Accept       multipart/form-data
// @Produce      json
// @Param        form_id                  formData  string  false  "Source form id"
// @Param        form_fields[name]        formData  string  true   "First name"
// @Param        form_fields[surname]     formData  string  true   "Last name"
// @Param        form_fields[email]       formData  string  true   "Email"
// @Param        form_fields[phone]       formData  string  true   "Phone"
// @Param        form_fields[position]    formData  string  true   "Position code or label"
// @Param        form_fields[hours]       formData  string  false  "Availability"
// @Param        form_fields[message]     formData  string  false  "Message"
// @Param        form_fields[privacy]     formData  string  true   "Privacy policy consent"
// @Param        form_fields[file_cv][]   formData  file    false  "CV (pdf, doc, docx, txt, rtf; max 2MB)"
// @Success      201  {object}  formsPayload
// @Failure      400  {object}  formsPayload
// @Failure      429  {object}  formsPayload
// @Failure      500  {object}  formsPayload
// @Router       /forms/job-application [post]
func SubmitJobApplication(svc service.SubmissionService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := service.JobApplicationRequest{
			Form: validation.JobForm{
				FormID:   c.FormValue("form_id"),
				Name:     formField(c, "name"),
				Surname:  formField(c, "surname"),
				Email:    formField(c, "email"),
				Phone:    formField(c, "phone"),
				Position: formField(c, "position"),
				Hours:    formField(c, "hours"),
				Message:  formField(c, "message"),
				Privacy:  formField(c, "privacy"),
			},
			CV:   cvUpload(c),
			Meta: requestMeta(c),
		}

		rec, err := svc.SubmitJobApplication(c.UserContext(), req)
		if err != nil {
			return writeSubmissionError(c, log, "job_application", err)
		}
		return c.Status(fiber.StatusCreated).JSON(formsPayload{Success: true, SubmissionID: rec.ID})
	}
}
