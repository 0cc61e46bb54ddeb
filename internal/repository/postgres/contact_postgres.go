package postgres

import (
	"context"
	"database/sql"

	"formsapi/internal/model"
	"formsapi/internal/repository"
)

const contactColumns = `id, first_name, last_name, email, phone, position, city, province, country,
		message, days, privacy1, privacy2, form_id, ip_address, user_agent, created_at`

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a new submission row and returns the stored record.
func (r *ContactPostgres) Create(ctx context.Context, s *model.ContactSubmission) (*model.ContactSubmission, error) {
	const q = `
		INSERT INTO contact_submissions (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + contactColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.FirstName,
		s.LastName,
		s.Email,
		s.Phone,
		s.Position,
		s.City,
		s.Province,
		s.Country,
		s.Message,
		s.Days,
		s.PrivacyAccepted,
		s.NewsletterConsent,
		s.SourceFormID,
		s.IPAddress,
		s.UserAgent,
		s.CreatedAt,
	)
	return scanContact(row)
}

// FindByID fetches a single submission by its ID.
func (r *ContactPostgres) FindByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	const q = `SELECT ` + contactColumns + ` FROM contact_submissions WHERE id = $1`
	return scanContact(r.db.QueryRowContext(ctx, q, id))
}

// List returns submissions matching f, newest first, with the total match count.
func (r *ContactPostgres) List(ctx context.Context, f repository.ContactFilter, pq repository.PageQuery) (*repository.PageResult[model.ContactSubmission], error) {
	var w whereBuilder
	w.eq("position", f.Position)
	if f.Country != "" {
		w.add("country ILIKE %[1]s", escapeLike(f.Country))
	}
	w.boolean("privacy1", f.Privacy)
	w.boolean("privacy2", f.Newsletter)
	w.createdBetween(f.From, f.To)
	w.search(f.Search, "first_name", "last_name", "email", "phone", "city", "country")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q, args := w.page(`SELECT `+contactColumns+` FROM contact_submissions`+w.sql()+` ORDER BY created_at DESC, id DESC`, pq.Limit, pq.Offset)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactSubmission, 0)
	for rows.Next() {
		s, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ContactSubmission]{
		Items: items,
		Total: total,
	}, nil
}

func scanContact(row rowScanner) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	if err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Position,
		&s.City,
		&s.Province,
		&s.Country,
		&s.Message,
		&s.Days,
		&s.PrivacyAccepted,
		&s.NewsletterConsent,
		&s.SourceFormID,
		&s.IPAddress,
		&s.UserAgent,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
