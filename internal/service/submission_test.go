package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"formsapi/internal/model"
	"formsapi/internal/notify"
	repoMocks "formsapi/internal/repository/mocks"
	"formsapi/internal/storage"
	storeMocks "formsapi/internal/storage/mocks"
	"formsapi/internal/validation"
)

type fakeNotifier struct {
	enabled bool
	ok      bool
	texts   []string
	docs    []notify.Document
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) SendText(_ context.Context, text string) bool {
	f.texts = append(f.texts, text)
	return f.ok
}

func (f *fakeNotifier) SendDocument(_ context.Context, doc notify.Document, _ string) bool {
	f.docs = append(f.docs, doc)
	return f.ok
}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

const fixedID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func newTestSubmissionService(contacts *repoMocks.MockContactRepository, jobs *repoMocks.MockJobApplicationRepository, store *storeMocks.MockStorage, n notify.Notifier) *submissionService {
	svc := NewSubmissionService(validation.New(validation.Options{}), contacts, jobs, store, n, nil, zerolog.Nop()).(*submissionService)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return fixedID }
	return svc
}

func validContactForm() validation.ContactForm {
	return validation.ContactForm{
		FirstName: "Aziz",
		LastName:  "Karimov",
		Email:     "aziz@example.uz",
		Phone:     "+998901234567",
		Position:  "clinic_owner",
		City:      "Tashkent",
		Province:  "Tashkent",
		Country:   "Uzbekistan",
		Privacy1:  "on",
		Privacy2:  "on",
	}
}

func validJobForm() validation.JobForm {
	return validation.JobForm{
		Name:     "Dilnoza",
		Surname:  "Rahimova",
		Email:    "dilnoza@example.uz",
		Phone:    "+998910000000",
		Position: "italy_abroad_agents",
		Privacy:  "on",
	}
}

func upload(name string, data []byte) *model.Upload {
	return &model.Upload{
		Filename:    name,
		ContentType: "application/pdf",
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func TestSubmissionService_SubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("validation error stores nothing", func(t *testing.T) {
		contacts := new(repoMocks.MockContactRepository)
		n := &fakeNotifier{enabled: true, ok: true}
		svc := newTestSubmissionService(contacts, nil, nil, n)

		form := validContactForm()
		form.Email = "nope"
		form.Privacy2 = ""

		got, err := svc.SubmitContact(ctx, ContactRequest{Form: form})

		assert.Nil(t, got)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Invalid email format", ve.Fields["email"])
		assert.Contains(t, ve.Fields, "privacy2")
		contacts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, n.texts)
	})

	t.Run("happy path", func(t *testing.T) {
		contacts := new(repoMocks.MockContactRepository)
		n := &fakeNotifier{enabled: true, ok: true}
		svc := newTestSubmissionService(contacts, nil, nil, n)

		contacts.On("Create", ctx, mock.MatchedBy(func(s *model.ContactSubmission) bool {
			return s.ID == fixedID &&
				s.Position == "clinic_owner" &&
				s.CreatedAt.Equal(fixedNow) &&
				model.Deref(s.IPAddress) == "203.0.113.7" &&
				s.UserAgent == nil
		})).Return(func(_ context.Context, s *model.ContactSubmission) *model.ContactSubmission { return s }, nil)

		got, err := svc.SubmitContact(ctx, ContactRequest{
			Form: validContactForm(),
			Meta: RequestMeta{Lang: "ru", IP: "203.0.113.7"},
		})

		require.NoError(t, err)
		assert.Equal(t, fixedID, got.ID)
		require.Len(t, n.texts, 1)
		assert.Contains(t, n.texts[0], "Aziz")
		contacts.AssertExpectations(t)
	})

	t.Run("notification failure keeps the record", func(t *testing.T) {
		contacts := new(repoMocks.MockContactRepository)
		n := &fakeNotifier{enabled: true, ok: false}
		svc := newTestSubmissionService(contacts, nil, nil, n)

		contacts.On("Create", ctx, mock.Anything).Return(&model.ContactSubmission{ID: fixedID, FirstName: "Aziz"}, nil)

		got, err := svc.SubmitContact(ctx, ContactRequest{Form: validContactForm()})

		require.NoError(t, err)
		assert.Equal(t, fixedID, got.ID)
		assert.Len(t, n.texts, 1)
	})

	t.Run("disabled notifier is skipped", func(t *testing.T) {
		contacts := new(repoMocks.MockContactRepository)
		n := &fakeNotifier{}
		svc := newTestSubmissionService(contacts, nil, nil, n)

		contacts.On("Create", ctx, mock.Anything).Return(&model.ContactSubmission{ID: fixedID}, nil)

		_, err := svc.SubmitContact(ctx, ContactRequest{Form: validContactForm()})
		require.NoError(t, err)
		assert.Empty(t, n.texts)
	})

	t.Run("repository error", func(t *testing.T) {
		contacts := new(repoMocks.MockContactRepository)
		svc := newTestSubmissionService(contacts, nil, nil, &fakeNotifier{})

		contacts.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))

		got, err := svc.SubmitContact(ctx, ContactRequest{Form: validContactForm()})
		assert.Nil(t, got)
		assert.EqualError(t, err, "save contact submission: db down")
	})
}

func TestSubmissionService_SubmitJobApplication(t *testing.T) {
	ctx := context.Background()
	wantKey := storage.CVKey(fixedID, fixedNow, "cv.pdf")

	t.Run("without cv", func(t *testing.T) {
		jobs := new(repoMocks.MockJobApplicationRepository)
		store := new(storeMocks.MockStorage)
		n := &fakeNotifier{enabled: true, ok: true}
		svc := newTestSubmissionService(nil, jobs, store, n)

		jobs.On("Create", ctx, mock.MatchedBy(func(a *model.JobApplication) bool {
			return a.CVFile == nil && a.Position == "italy_abroad_agents"
		})).Return(func(_ context.Context, a *model.JobApplication) *model.JobApplication { return a }, nil)

		got, err := svc.SubmitJobApplication(ctx, JobApplicationRequest{Form: validJobForm()})

		require.NoError(t, err)
		assert.False(t, got.HasCV())
		assert.Len(t, n.texts, 1)
		assert.Empty(t, n.docs)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cv is stored and attached", func(t *testing.T) {
		jobs := new(repoMocks.MockJobApplicationRepository)
		store := new(storeMocks.MockStorage)
		n := &fakeNotifier{enabled: true, ok: true}
		svc := newTestSubmissionService(nil, jobs, store, n)
		data := bytes.Repeat([]byte("a"), 1<<20)

		store.On("Put", ctx, wantKey, mock.Anything, storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: "application/pdf",
			Metadata: map[string]string{
				"original-filename": "cv.pdf",
				"application-id":    fixedID,
			},
		}).Return(storage.ObjectInfo{Key: wantKey, Size: int64(len(data))}, nil)
		jobs.On("Create", ctx, mock.MatchedBy(func(a *model.JobApplication) bool {
			return model.Deref(a.CVFile) == wantKey
		})).Return(func(_ context.Context, a *model.JobApplication) *model.JobApplication { return a }, nil)

		got, err := svc.SubmitJobApplication(ctx, JobApplicationRequest{Form: validJobForm(), CV: upload("cv.pdf", data)})

		require.NoError(t, err)
		assert.Equal(t, wantKey, model.Deref(got.CVFile))
		require.Len(t, n.docs, 1)
		assert.Equal(t, "cv.pdf", n.docs[0].Filename)
		assert.Len(t, n.docs[0].Data, len(data))
		store.AssertExpectations(t)
		jobs.AssertExpectations(t)
	})

	t.Run("oversized cv is rejected", func(t *testing.T) {
		jobs := new(repoMocks.MockJobApplicationRepository)
		store := new(storeMocks.MockStorage)
		svc := newTestSubmissionService(nil, jobs, store, &fakeNotifier{})

		got, err := svc.SubmitJobApplication(ctx, JobApplicationRequest{
			Form: validJobForm(),
			CV:   upload("cv.pdf", bytes.Repeat([]byte("a"), 3<<20)),
		})

		assert.Nil(t, got)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "CV file too large (max 2MB)", ve.Fields[validation.FieldCV])
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("understated size is caught while reading", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		svc := newTestSubmissionService(nil, new(repoMocks.MockJobApplicationRepository), store, &fakeNotifier{})
		up := upload("cv.pdf", bytes.Repeat([]byte("a"), 3<<20))
		up.Size = 10

		_, err := svc.SubmitJobApplication(ctx, JobApplicationRequest{Form: validJobForm(), CV: up})

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, validation.FieldCV)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		jobs := new(repoMocks.MockJobApplicationRepository)
		store := new(storeMocks.MockStorage)
		svc := newTestSubmissionService(nil, jobs, store, &fakeNotifier{})

		store.On("Put", ctx, wantKey, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("bucket gone"))

		_, err := svc.SubmitJobApplication(ctx, JobApplicationRequest{Form: validJobForm(), CV: upload("cv.pdf", []byte("cv"))})

		assert.EqualError(t, err, "upload cv to storage: bucket gone")
		jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert failure removes the stored cv", func(t *testing.T) {
		jobs := new(repoMocks.MockJobApplicationRepository)
		store := new(storeMocks.MockStorage)
		n := &fakeNotifier{enabled: true, ok: true}
		svc := newTestSubmissionService(nil, jobs, store, n)

		store.On("Put", ctx, wantKey, mock.Anything, mock.Anything).Return(storage.ObjectInfo{Key: wantKey}, nil)
		jobs.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
		store.On("Delete", ctx, wantKey).Return(nil)

		got, err := svc.SubmitJobApplication(ctx, JobApplicationRequest{Form: validJobForm(), CV: upload("cv.pdf", []byte("cv"))})

		assert.Nil(t, got)
		assert.EqualError(t, err, "save job application: db down")
		store.AssertExpectations(t)
		assert.Empty(t, n.texts)
	})

	t.Run("insert failure with failed rollback", func(t *testing.T) {
		jobs := new(repoMocks.MockJobApplicationRepository)
		store := new(storeMocks.MockStorage)
		svc := newTestSubmissionService(nil, jobs, store, &fakeNotifier{})

		store.On("Put", ctx, wantKey, mock.Anything, mock.Anything).Return(storage.ObjectInfo{Key: wantKey}, nil)
		jobs.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
		store.On("Delete", ctx, wantKey).Return(errors.New("denied"))

		_, err := svc.SubmitJobApplication(ctx, JobApplicationRequest{Form: validJobForm(), CV: upload("cv.pdf", []byte("cv"))})

		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "rollback delete failed: denied"))
	})
}
