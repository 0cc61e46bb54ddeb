// Package model contains the submission records shared by storage, services and handlers.
package model

import (
	"path"
	"strings"
	"time"
)

// ContactSubmission is a patient inquiry sent through the contact form.
// Position always holds a reason code, never label text.
type ContactSubmission struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Position          string    `json:"position"`
	City              string    `json:"city"`
	Province          string    `json:"province"`
	Country           string    `json:"country"`
	Message           *string   `json:"message,omitempty"`
	Days              *string   `json:"days,omitempty"`
	PrivacyAccepted   bool      `json:"privacy1"`
	NewsletterConsent bool      `json:"privacy2"`
	SourceFormID      *string   `json:"form_id,omitempty"`
	IPAddress         *string   `json:"ip_address,omitempty"`
	UserAgent         *string   `json:"user_agent,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (s *ContactSubmission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// JobApplication is a submission of the "work with us" form.
type JobApplication struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Position        string    `json:"position"`
	Hours           *string   `json:"hours,omitempty"`
	Message         *string   `json:"message,omitempty"`
	CVFile          *string   `json:"cv_file,omitempty"`
	PrivacyAccepted bool      `json:"privacy"`
	SourceFormID    *string   `json:"form_id,omitempty"`
	IPAddress       *string   `json:"ip_address,omitempty"`
	UserAgent       *string   `json:"user_agent,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// FullName joins name and surname.
func (a *JobApplication) FullName() string {
	return strings.TrimSpace(a.Name + " " + a.Surname)
}

// HasCV reports whether a CV object is attached.
func (a *JobApplication) HasCV() bool {
	return a.CVFile != nil && *a.CVFile != ""
}

// CVFilename is the base name of the stored CV, or "" when none is attached.
func (a *JobApplication) CVFilename() string {
	if !a.HasCV() {
		return ""
	}
	return path.Base(*a.CVFile)
}

// OptionalString returns nil for blank input and a pointer to the trimmed
// value otherwise.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
