package mocks

import (
	"context"

	"formsapi/internal/model"
	"formsapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, s *model.ContactSubmission) (*model.ContactSubmission, error) {
	args := m.Called(ctx, s)
	if f, ok := args.Get(0).(func(context.Context, *model.ContactSubmission) *model.ContactSubmission); ok {
		return f(ctx, s), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, f repository.ContactFilter, pq repository.PageQuery) (*repository.PageResult[model.ContactSubmission], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ContactSubmission]), args.Error(1)
}
