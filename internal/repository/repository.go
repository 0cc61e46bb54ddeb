package repository

import (
	"context"
	"time"

	"formsapi/internal/model"
)

// ContactRepository defines data access for contact submissions using SQL queries only.
// Rows are append-only: there is no update or delete.
type ContactRepository interface {
	// Create inserts a new submission. The caller provides ID and CreatedAt.
	Create(ctx context.Context, s *model.ContactSubmission) (*model.ContactSubmission, error)

	// FindByID returns a submission by its ID.
	FindByID(ctx context.Context, id string) (*model.ContactSubmission, error)

	// List returns matching submissions, most recent first, and the total match count.
	List(ctx context.Context, f ContactFilter, pq PageQuery) (*PageResult[model.ContactSubmission], error)
}

// JobApplicationRepository defines data access for job applications.
// CVFile is written together with the row; rows are never updated.
type JobApplicationRepository interface {
	Create(ctx context.Context, a *model.JobApplication) (*model.JobApplication, error)
	FindByID(ctx context.Context, id string) (*model.JobApplication, error)
	List(ctx context.Context, f JobApplicationFilter, pq PageQuery) (*PageResult[model.JobApplication], error)
}

// ContactFilter narrows operator listings. Zero values match everything.
type ContactFilter struct {
	Position   string
	Country    string
	Privacy    *bool
	Newsletter *bool
	From       *time.Time
	To         *time.Time
	Search     string
}

// JobApplicationFilter narrows operator listings. Zero values match everything.
type JobApplicationFilter struct {
	Position string
	Privacy  *bool
	HasCV    *bool
	From     *time.Time
	To       *time.Time
	Search   string
}

// PageQuery holds limit/offset pagination parameters.
// A non-positive Limit means no limit.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
