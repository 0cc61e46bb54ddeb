package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"formsapi/internal/model"
	"formsapi/internal/normalize"
	"formsapi/internal/repository"
	"formsapi/internal/storage"
)

// CVLinkExpiry bounds the lifetime of CV download links.
const CVLinkExpiry = 15 * time.Minute

// ContactListResult is the service-level DTO for paginated contact submissions.
type ContactListResult struct {
	Items []model.ContactSubmission `json:"data"`
	Total int                       `json:"total"`
}

// JobApplicationListResult is the service-level DTO for paginated job applications.
type JobApplicationListResult struct {
	Items []model.JobApplication `json:"data"`
	Total int                    `json:"total"`
}

// ReviewService is the read-only operator view over stored submissions.
type ReviewService interface {
	ListContacts(ctx context.Context, f repository.ContactFilter, limit, offset int) (*ContactListResult, error)
	GetContact(ctx context.Context, id string) (*model.ContactSubmission, error)
	// ExportContactsCSV writes every submission matching f to w.
	ExportContactsCSV(ctx context.Context, f repository.ContactFilter, w io.Writer) error

	ListJobApplications(ctx context.Context, f repository.JobApplicationFilter, limit, offset int) (*JobApplicationListResult, error)
	GetJobApplication(ctx context.Context, id string) (*model.JobApplication, error)
	// CVDownloadURL returns a short-lived link to the application's CV.
	CVDownloadURL(ctx context.Context, id string) (string, error)
	// OpenCV streams the application's CV. The caller closes the reader.
	OpenCV(ctx context.Context, id string) (*CVFile, error)
}

// CVFile is an opened CV attachment.
type CVFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

type reviewService struct {
	contacts repository.ContactRepository
	jobs     repository.JobApplicationRepository
	store    storage.Storage
	loc      *time.Location
}

// NewReviewService constructs a ReviewService. Export timestamps are rendered in loc.
func NewReviewService(contacts repository.ContactRepository, jobs repository.JobApplicationRepository, store storage.Storage, loc *time.Location) ReviewService {
	if loc == nil {
		loc = time.UTC
	}
	return &reviewService{contacts: contacts, jobs: jobs, store: store, loc: loc}
}

func normalizePage(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func (s *reviewService) ListContacts(ctx context.Context, f repository.ContactFilter, limit, offset int) (*ContactListResult, error) {
	res, err := s.contacts.List(ctx, f, normalizePage(limit, offset))
	if err != nil {
		return nil, err
	}
	return &ContactListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *reviewService) GetContact(ctx context.Context, id string) (*model.ContactSubmission, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

var contactCSVHeader = []string{
	"ID", "Created At", "First Name", "Last Name", "Email", "Phone", "Position",
	"City", "Province", "Country", "Message", "Days", "Privacy Policy",
	"Newsletter Consent", "IP Address", "User Agent", "Form ID",
}

func (s *reviewService) ExportContactsCSV(ctx context.Context, f repository.ContactFilter, w io.Writer) error {
	res, err := s.contacts.List(ctx, f, repository.PageQuery{})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(contactCSVHeader); err != nil {
		return err
	}
	for _, r := range res.Items {
		if err := cw.Write([]string{
			r.ID,
			r.CreatedAt.In(s.loc).Format("2006-01-02 15:04:05"),
			r.FirstName,
			r.LastName,
			r.Email,
			r.Phone,
			normalize.ReasonDisplay(r.Position),
			r.City,
			r.Province,
			r.Country,
			model.Deref(r.Message),
			model.Deref(r.Days),
			yesNo(r.PrivacyAccepted),
			yesNo(r.NewsletterConsent),
			model.Deref(r.IPAddress),
			model.Deref(r.UserAgent),
			model.Deref(r.SourceFormID),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *reviewService) ListJobApplications(ctx context.Context, f repository.JobApplicationFilter, limit, offset int) (*JobApplicationListResult, error) {
	res, err := s.jobs.List(ctx, f, normalizePage(limit, offset))
	if err != nil {
		return nil, err
	}
	return &JobApplicationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *reviewService) GetJobApplication(ctx context.Context, id string) (*model.JobApplication, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *reviewService) CVDownloadURL(ctx context.Context, id string) (string, error) {
	rec, err := s.GetJobApplication(ctx, id)
	if err != nil {
		return "", err
	}
	if !rec.HasCV() {
		return "", ErrNoCV
	}
	u, err := s.store.PresignGet(ctx, *rec.CVFile, CVLinkExpiry)
	if err != nil {
		return "", fmt.Errorf("presign cv: %w", err)
	}
	return u, nil
}

func (s *reviewService) OpenCV(ctx context.Context, id string) (*CVFile, error) {
	rec, err := s.GetJobApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rec.HasCV() {
		return nil, ErrNoCV
	}
	body, info, err := s.store.Get(ctx, *rec.CVFile)
	if err != nil {
		return nil, fmt.Errorf("open cv: %w", err)
	}
	ct := info.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &CVFile{
		Filename:    rec.CVFilename(),
		ContentType: ct,
		Size:        info.Size,
		Body:        body,
	}, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
