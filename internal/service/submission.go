package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"formsapi/internal/metrics"
	"formsapi/internal/model"
	"formsapi/internal/normalize"
	"formsapi/internal/notify"
	"formsapi/internal/repository"
	"formsapi/internal/storage"
	"formsapi/internal/validation"
)

// RequestMeta is what the server knows about a submission besides its fields.
type RequestMeta struct {
	Lang      normalize.Lang
	IP        string
	UserAgent string
	Referer   string
}

// ContactRequest is a raw contact form submission.
type ContactRequest struct {
	Form validation.ContactForm
	Meta RequestMeta
}

// JobApplicationRequest is a raw job application with an optional CV.
type JobApplicationRequest struct {
	Form validation.JobForm
	CV   *model.Upload
	Meta RequestMeta
}

// SubmissionService accepts public form submissions.
type SubmissionService interface {
	// SubmitContact validates, stores and announces a contact submission.
	// Invalid input yields a *ValidationError and stores nothing.
	SubmitContact(ctx context.Context, req ContactRequest) (*model.ContactSubmission, error)

	// SubmitJobApplication does the same for job applications. The CV, if
	// any, is stored before the row is written and removed again when the
	// insert fails.
	SubmitJobApplication(ctx context.Context, req JobApplicationRequest) (*model.JobApplication, error)
}

type submissionService struct {
	validator *validation.Validator
	contacts  repository.ContactRepository
	jobs      repository.JobApplicationRepository
	store     storage.Storage
	notifier  notify.Notifier
	metrics   *metrics.Business
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewSubmissionService constructs a SubmissionService. m may be nil.
func NewSubmissionService(
	v *validation.Validator,
	contacts repository.ContactRepository,
	jobs repository.JobApplicationRepository,
	store storage.Storage,
	notifier notify.Notifier,
	m *metrics.Business,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionService{
		validator: v,
		contacts:  contacts,
		jobs:      jobs,
		store:     store,
		notifier:  notifier,
		metrics:   m,
		log:       logger.With().Str("component", "submission").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *submissionService) SubmitContact(ctx context.Context, req ContactRequest) (*model.ContactSubmission, error) {
	rec, errs := s.validator.Contact(req.Form)
	if errs != nil {
		s.metrics.Submission(metrics.FormContact, metrics.OutcomeRejected)
		return nil, &ValidationError{Fields: errs}
	}

	rec.ID = s.newID()
	rec.CreatedAt = s.now()
	rec.IPAddress = model.OptionalString(req.Meta.IP)
	rec.UserAgent = model.OptionalString(req.Meta.UserAgent)

	stored, err := s.contacts.Create(ctx, rec)
	if err != nil {
		s.metrics.Submission(metrics.FormContact, metrics.OutcomeFailed)
		return nil, fmt.Errorf("save contact submission: %w", err)
	}
	s.metrics.Submission(metrics.FormContact, metrics.OutcomeAccepted)
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("submission.id", stored.ID))

	if s.notifier.Enabled() {
		text := notify.ContactText(stored, req.Form.Position, notifyContext(req.Meta))
		s.notified(ctx, metrics.FormContact, "text", stored.ID, s.notifier.SendText(ctx, text))
	}
	return stored, nil
}

func (s *submissionService) SubmitJobApplication(ctx context.Context, req JobApplicationRequest) (*model.JobApplication, error) {
	if req.CV != nil {
		req.Form.CV = &validation.FileInfo{Filename: req.CV.Filename, Size: req.CV.Size}
	}
	rec, errs := s.validator.Job(req.Form)
	if errs != nil {
		s.metrics.Submission(metrics.FormJob, metrics.OutcomeRejected)
		return nil, &ValidationError{Fields: errs}
	}

	rec.ID = s.newID()
	rec.CreatedAt = s.now()
	rec.IPAddress = model.OptionalString(req.Meta.IP)
	rec.UserAgent = model.OptionalString(req.Meta.UserAgent)

	var cv []byte
	if req.CV != nil {
		data, key, err := s.storeCV(ctx, rec, req.CV)
		if err != nil {
			outcome := metrics.OutcomeFailed
			var ve *ValidationError
			if errors.As(err, &ve) {
				outcome = metrics.OutcomeRejected
			}
			s.metrics.Submission(metrics.FormJob, outcome)
			return nil, err
		}
		cv = data
		rec.CVFile = &key
	}

	stored, err := s.jobs.Create(ctx, rec)
	if err != nil {
		s.metrics.Submission(metrics.FormJob, metrics.OutcomeFailed)
		if rec.CVFile != nil {
			// Rollback: delete the object from storage
			if delErr := s.store.Delete(ctx, *rec.CVFile); delErr != nil {
				return nil, fmt.Errorf("save job application: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("save job application: %w", err)
	}
	s.metrics.Submission(metrics.FormJob, metrics.OutcomeAccepted)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("submission.id", stored.ID),
		attribute.Bool("submission.has_cv", stored.HasCV()),
	)

	if s.notifier.Enabled() {
		text := notify.JobText(stored, req.Form.Position, notifyContext(req.Meta))
		s.notified(ctx, metrics.FormJob, "text", stored.ID, s.notifier.SendText(ctx, text))
		if cv != nil {
			doc := notify.Document{Filename: req.CV.Filename, ContentType: req.CV.ContentType, Data: cv}
			s.notified(ctx, metrics.FormJob, "document", stored.ID, s.notifier.SendDocument(ctx, doc, notify.CVCaption(stored)))
		}
	}
	return stored, nil
}

// storeCV reads the upload and writes it under the application's CV key.
func (s *submissionService) storeCV(ctx context.Context, rec *model.JobApplication, up *model.Upload) ([]byte, string, error) {
	if up.Open == nil {
		return nil, "", fmt.Errorf("open cv: no content")
	}
	rc, err := up.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open cv: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, validation.MaxCVSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read cv: %w", err)
	}
	// The declared size may understate the body.
	if msg := validation.CheckCV(validation.FileInfo{Filename: up.Filename, Size: int64(len(data))}); msg != "" {
		return nil, "", &ValidationError{Fields: validation.Errors{validation.FieldCV: msg}}
	}

	ct := up.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	key := storage.CVKey(rec.ID, rec.CreatedAt, up.Filename)
	if _, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: ct,
		Metadata: map[string]string{
			"original-filename": up.Filename,
			"application-id":    rec.ID,
		},
	}); err != nil {
		return nil, "", fmt.Errorf("upload cv to storage: %w", err)
	}
	return data, key, nil
}

func (s *submissionService) notified(ctx context.Context, form, kind, id string, delivered bool) {
	s.metrics.Notification(form, kind, delivered)
	trace.SpanFromContext(ctx).AddEvent("notification", trace.WithAttributes(
		attribute.String("form", form),
		attribute.String("kind", kind),
		attribute.Bool("delivered", delivered),
	))
	if !delivered {
		s.log.Warn().
			Str("event", "notification_incomplete").
			Str("form", form).
			Str("kind", kind).
			Str("submission_id", id).
			Send()
	}
}

func notifyContext(m RequestMeta) notify.Context {
	return notify.Context{Lang: m.Lang, Referer: m.Referer, IP: m.IP}
}
