package mocks

import (
	"context"
	"io"

	"formsapi/internal/model"
	"formsapi/internal/repository"
	"formsapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ListContacts(ctx context.Context, f repository.ContactFilter, limit, offset int) (*service.ContactListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContactListResult), args.Error(1)
}

func (m *MockReviewService) GetContact(ctx context.Context, id string) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockReviewService) ExportContactsCSV(ctx context.Context, f repository.ContactFilter, w io.Writer) error {
	args := m.Called(ctx, f, w)
	return args.Error(0)
}

func (m *MockReviewService) ListJobApplications(ctx context.Context, f repository.JobApplicationFilter, limit, offset int) (*service.JobApplicationListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JobApplicationListResult), args.Error(1)
}

func (m *MockReviewService) GetJobApplication(ctx context.Context, id string) (*model.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *MockReviewService) CVDownloadURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockReviewService) OpenCV(ctx context.Context, id string) (*service.CVFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CVFile), args.Error(1)
}
