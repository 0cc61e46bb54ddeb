package mocks

import (
	"context"

	"formsapi/internal/model"
	"formsapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockJobApplicationRepository struct {
	mock.Mock
}

func (m *MockJobApplicationRepository) Create(ctx context.Context, a *model.JobApplication) (*model.JobApplication, error) {
	args := m.Called(ctx, a)
	if f, ok := args.Get(0).(func(context.Context, *model.JobApplication) *model.JobApplication); ok {
		return f(ctx, a), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) FindByID(ctx context.Context, id string) (*model.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) List(ctx context.Context, f repository.JobApplicationFilter, pq repository.PageQuery) (*repository.PageResult[model.JobApplication], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.JobApplication]), args.Error(1)
}
