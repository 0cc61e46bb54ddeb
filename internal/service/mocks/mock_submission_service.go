package mocks

import (
	"context"

	"formsapi/internal/model"
	"formsapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitContact(ctx context.Context, req service.ContactRequest) (*model.ContactSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockSubmissionService) SubmitJobApplication(ctx context.Context, req service.JobApplicationRequest) (*model.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}
