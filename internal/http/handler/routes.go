package handler

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	_ "formsapi/docs"
	"formsapi/internal/config"
	"formsapi/internal/http/middleware"
	"formsapi/internal/service"
)

// Deps carries what the routes need. Nil services leave their routes unmounted.
type Deps struct {
	DB          *sql.DB
	Submissions service.SubmissionService
	Review      service.ReviewService
	Admin       config.AdminConfig
	// FormsLimiter throttles submissions when set.
	FormsLimiter *middleware.RateLimiter
	// Metrics serves /metrics when set.
	Metrics fiber.Handler
	// MediaRoot is served under MediaURL when set.
	MediaRoot string
	MediaURL  string
	SiteRoot  string
	Location  *time.Location
	Logger    zerolog.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// The static site is registered last and catches every remaining GET.
func RegisterRoutes(app *fiber.App, d Deps) {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get("/metrics", d.Metrics)
	}
	// The doc carries no host, so the UI calls back to whichever host served it.
	app.Get("/swagger/*", swagger.HandlerDefault)

	if d.Submissions != nil {
		forms := app.Group("/forms", middleware.FormsCORS())
		if d.FormsLimiter != nil {
			forms.Use(d.FormsLimiter.Limit())
		}
		for path, h := range map[string]fiber.Handler{
			"/contact":         SubmitContact(d.Submissions, d.Logger),
			"/job-application": SubmitJobApplication(d.Submissions, d.Logger),
		} {
			forms.Post(path, h)
			forms.Options(path, FormsPreflight())
			forms.All(path, FormsMethodNotAllowed())
		}
	}

	if d.Review != nil && d.Admin.Enabled() {
		admin := app.Group("/admin", basicauth.New(basicauth.Config{
			Users: map[string]string{d.Admin.Username: d.Admin.Password},
			Realm: "Submissions",
		}))
		admin.Get("/contacts", ListContacts(d.Review, loc))
		admin.Get("/contacts/export.csv", ExportContactsCSV(d.Review, loc))
		admin.Get("/contacts/:id", GetContact(d.Review))
		admin.Get("/job-applications", ListJobApplications(d.Review, loc))
		admin.Get("/job-applications/:id", GetJobApplication(d.Review))
		admin.Get("/job-applications/:id/cv", DownloadCV(d.Review))
	}

	if d.MediaRoot != "" {
		prefix := "/" + strings.Trim(d.MediaURL, "/")
		if prefix == "/" {
			prefix = "/media"
		}
		app.Static(prefix, d.MediaRoot, fiber.Static{Browse: false})
	}

	if d.SiteRoot != "" {
		app.Get("/*", StaticSite(d.SiteRoot))
	}
}
