package handler

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"formsapi/internal/normalize"
	"formsapi/internal/repository"
)

const dateLayout = "2006-01-02"

var validate = newQueryValidator()

func newQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	for tag, n := range map[string]*normalize.Normalizer{
		"reason_code":   normalize.Reasons,
		"position_code": normalize.Positions,
	} {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return n.IsCode(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	return v
}

// queryErrors flattens validator errors into field → message pairs.
func queryErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["query"] = "malformed query parameters"
		return out
	}
	for _, e := range verrs {
		switch e.Tag() {
		case "reason_code", "position_code":
			out[e.Field()] = "unknown code"
		case "boolean":
			out[e.Field()] = "must be a boolean"
		case "datetime":
			out[e.Field()] = "must be a date (YYYY-MM-DD)"
		case "min", "max":
			out[e.Field()] = "out of range (" + e.Tag() + " " + e.Param() + ")"
		default:
			out[e.Field()] = "invalid value"
		}
	}
	return out
}

// bounds converts an inclusive day range into [from, to) instants in loc.
// Inputs have already passed the datetime check.
func bounds(fromDay, toDay string, loc *time.Location) (from, to *time.Time) {
	if fromDay != "" {
		if t, err := time.ParseInLocation(dateLayout, fromDay, loc); err == nil {
			from = &t
		}
	}
	if toDay != "" {
		if t, err := time.ParseInLocation(dateLayout, toDay, loc); err == nil {
			next := t.AddDate(0, 0, 1)
			to = &next
		}
	}
	return from, to
}

type contactQuery struct {
	Position string `query:"position" validate:"omitempty,reason_code"`
	Country  string `query:"country" validate:"max=100"`
	Privacy1 string `query:"privacy1" validate:"omitempty,boolean"`
	Privacy2 string `query:"privacy2" validate:"omitempty,boolean"`
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Q        string `query:"q" validate:"max=200"`
	Limit    int    `query:"limit" validate:"min=0,max=500"`
	Offset   int    `query:"offset" validate:"min=0"`
}

func (q contactQuery) filter(loc *time.Location) repository.ContactFilter {
	from, to := bounds(q.From, q.To, loc)
	return repository.ContactFilter{
		Position:   q.Position,
		Country:    strings.TrimSpace(q.Country),
		Privacy:    optionalBool(q.Privacy1),
		Newsletter: optionalBool(q.Privacy2),
		From:       from,
		To:         to,
		Search:     strings.TrimSpace(q.Q),
	}
}

type jobApplicationQuery struct {
	Position string `query:"position" validate:"omitempty,position_code"`
	Privacy  string `query:"privacy" validate:"omitempty,boolean"`
	HasCV    string `query:"has_cv" validate:"omitempty,boolean"`
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Q        string `query:"q" validate:"max=200"`
	Limit    int    `query:"limit" validate:"min=0,max=500"`
	Offset   int    `query:"offset" validate:"min=0"`
}

func (q jobApplicationQuery) filter(loc *time.Location) repository.JobApplicationFilter {
	from, to := bounds(q.From, q.To, loc)
	return repository.JobApplicationFilter{
		Position: q.Position,
		Privacy:  optionalBool(q.Privacy),
		HasCV:    optionalBool(q.HasCV),
		From:     from,
		To:       to,
		Search:   strings.TrimSpace(q.Q),
	}
}

func optionalBool(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}
