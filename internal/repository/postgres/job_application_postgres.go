package postgres

import (
	"context"
	"database/sql"

	"formsapi/internal/model"
	"formsapi/internal/repository"
)

const jobApplicationColumns = `id, name, surname, email, phone, position, hours, message, cv_file,
		privacy, form_id, ip_address, user_agent, created_at`

// JobApplicationPostgres is a PostgreSQL implementation of repository.JobApplicationRepository.
type JobApplicationPostgres struct {
	db *sql.DB
}

// NewJobApplicationPostgres creates a new JobApplicationPostgres repository.
func NewJobApplicationPostgres(db *sql.DB) *JobApplicationPostgres {
	return &JobApplicationPostgres{db: db}
}

var _ repository.JobApplicationRepository = (*JobApplicationPostgres)(nil)

// Create inserts a new application row and returns the stored record.
func (r *JobApplicationPostgres) Create(ctx context.Context, a *model.JobApplication) (*model.JobApplication, error) {
	const q = `
		INSERT INTO job_applications (` + jobApplicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + jobApplicationColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.Surname,
		a.Email,
		a.Phone,
		a.Position,
		a.Hours,
		a.Message,
		a.CVFile,
		a.PrivacyAccepted,
		a.SourceFormID,
		a.IPAddress,
		a.UserAgent,
		a.CreatedAt,
	)
	return scanJobApplication(row)
}

// FindByID fetches a single application by its ID.
func (r *JobApplicationPostgres) FindByID(ctx context.Context, id string) (*model.JobApplication, error) {
	const q = `SELECT ` + jobApplicationColumns + ` FROM job_applications WHERE id = $1`
	return scanJobApplication(r.db.QueryRowContext(ctx, q, id))
}

// List returns applications matching f, newest first, with the total match count.
func (r *JobApplicationPostgres) List(ctx context.Context, f repository.JobApplicationFilter, pq repository.PageQuery) (*repository.PageResult[model.JobApplication], error) {
	var w whereBuilder
	w.eq("position", f.Position)
	w.boolean("privacy", f.Privacy)
	if f.HasCV != nil {
		if *f.HasCV {
			w.raw("cv_file IS NOT NULL")
		} else {
			w.raw("cv_file IS NULL")
		}
	}
	w.createdBetween(f.From, f.To)
	w.search(f.Search, "name", "surname", "email", "phone")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_applications`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q, args := w.page(`SELECT `+jobApplicationColumns+` FROM job_applications`+w.sql()+` ORDER BY created_at DESC, id DESC`, pq.Limit, pq.Offset)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.JobApplication, 0)
	for rows.Next() {
		a, err := scanJobApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.JobApplication]{
		Items: items,
		Total: total,
	}, nil
}

func scanJobApplication(row rowScanner) (*model.JobApplication, error) {
	var a model.JobApplication
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Surname,
		&a.Email,
		&a.Phone,
		&a.Position,
		&a.Hours,
		&a.Message,
		&a.CVFile,
		&a.PrivacyAccepted,
		&a.SourceFormID,
		&a.IPAddress,
		&a.UserAgent,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
