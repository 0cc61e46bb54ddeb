// Package validation checks raw form field bags and turns them into records
// ready for persistence.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"formsapi/internal/model"
	"formsapi/internal/normalize"
)

// MaxCVSize is the largest accepted CV attachment.
const MaxCVSize = 2 << 20

// FieldCV is the error key used for attachment problems.
const FieldCV = "file_cv"

var cvExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".txt":  {},
	".rtf":  {},
}

// Errors maps a field name to a human readable message.
type Errors map[string]string

// Options tune validation. The zero value is strict.
type Options struct {
	// RelaxedCodes stores "other" for category values that match neither a
	// code nor a known label instead of rejecting them.
	RelaxedCodes bool
}

// ContactForm holds the raw values of a contact submission.
type ContactForm struct {
	FormID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Position  string
	City      string
	Province  string
	Country   string
	Message   string
	Days      string
	Privacy1  string
	Privacy2  string
}

// JobForm holds the raw values of a job application.
type JobForm struct {
	FormID   string
	Name     string
	Surname  string
	Email    string
	Phone    string
	Position string
	Hours    string
	Message  string
	Privacy  string
	CV       *FileInfo
}

// FileInfo is the attachment metadata validation needs.
type FileInfo struct {
	Filename string
	Size     int64
}

// Validator validates submissions of both forms. It holds no mutable state.
type Validator struct {
	opts      Options
	reasons   *normalize.Normalizer
	positions *normalize.Normalizer
}

// New returns a Validator using the built-in reason and position tables.
func New(opts Options) *Validator {
	return &Validator{
		opts:      opts,
		reasons:   normalize.Reasons,
		positions: normalize.Positions,
	}
}

// Contact validates a contact submission. Exactly one of the results is
// non-nil. Metadata such as ID, IP and timestamps is left for the caller.
func (v *Validator) Contact(f ContactForm) (*model.ContactSubmission, Errors) {
	errs := Errors{}

	required(errs, "first_name", f.FirstName, "First name is required")
	required(errs, "last_name", f.LastName, "Last name is required")
	email(errs, "email", f.Email)
	required(errs, "phone", f.Phone, "Phone is required")
	code := v.category(errs, "position", f.Position, v.reasons)
	required(errs, "city", f.City, "City is required")
	required(errs, "province", f.Province, "Province is required")
	required(errs, "country", f.Country, "Country is required")
	privacy := consent(errs, "privacy1", f.Privacy1, "Privacy policy must be accepted")
	newsletter := consent(errs, "privacy2", f.Privacy2, "Newsletter consent must be accepted")

	if len(errs) > 0 {
		return nil, errs
	}

	return &model.ContactSubmission{
		FirstName:         strings.TrimSpace(f.FirstName),
		LastName:          strings.TrimSpace(f.LastName),
		Email:             strings.TrimSpace(f.Email),
		Phone:             strings.TrimSpace(f.Phone),
		Position:          code,
		City:              strings.TrimSpace(f.City),
		Province:          strings.TrimSpace(f.Province),
		Country:           strings.TrimSpace(f.Country),
		Message:           model.OptionalString(f.Message),
		Days:              model.OptionalString(f.Days),
		PrivacyAccepted:   privacy,
		NewsletterConsent: newsletter,
		SourceFormID:      model.OptionalString(f.FormID),
	}, nil
}

// Job validates a job application, including the optional CV metadata.
func (v *Validator) Job(f JobForm) (*model.JobApplication, Errors) {
	errs := Errors{}

	required(errs, "name", f.Name, "First name is required")
	required(errs, "surname", f.Surname, "Last name is required")
	email(errs, "email", f.Email)
	required(errs, "phone", f.Phone, "Phone is required")
	code := v.category(errs, "position", f.Position, v.positions)
	privacy := consent(errs, "privacy", f.Privacy, "Privacy policy must be accepted")
	if f.CV != nil {
		if msg := CheckCV(*f.CV); msg != "" {
			errs[FieldCV] = msg
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &model.JobApplication{
		Name:            strings.TrimSpace(f.Name),
		Surname:         strings.TrimSpace(f.Surname),
		Email:           strings.TrimSpace(f.Email),
		Phone:           strings.TrimSpace(f.Phone),
		Position:        code,
		Hours:           model.OptionalString(f.Hours),
		Message:         model.OptionalString(f.Message),
		PrivacyAccepted: privacy,
		SourceFormID:    model.OptionalString(f.FormID),
	}, nil
}

// CheckCV returns an error message for an unacceptable attachment, or "".
func CheckCV(fi FileInfo) string {
	if fi.Size > MaxCVSize {
		return "CV file too large (max 2MB)"
	}
	if _, ok := cvExtensions[strings.ToLower(filepath.Ext(fi.Filename))]; !ok {
		return "Invalid file type"
	}
	return ""
}

// Truthy reports whether a checkbox value counts as checked.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func (v *Validator) category(errs Errors, field, raw string, n *normalize.Normalizer) string {
	if n.IsPlaceholder(raw) {
		errs[field] = "Position is required"
		return ""
	}
	if code, ok := n.Resolve(raw); ok {
		return code
	}
	if v.opts.RelaxedCodes {
		return normalize.Other
	}
	errs[field] = fmt.Sprintf("Invalid position: %s", strings.TrimSpace(raw))
	return ""
}

func required(errs Errors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
	}
}

func email(errs Errors, field, value string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs[field] = "Email is required"
	case !strings.Contains(value, "@") || !strings.Contains(value, "."):
		errs[field] = "Invalid email format"
	}
}

func consent(errs Errors, field, value, msg string) bool {
	if !Truthy(value) {
		errs[field] = msg
		return false
	}
	return true
}
