package service

import (
	"errors"
	"sort"
	"strings"

	"formsapi/internal/validation"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("submission not found")
	ErrNoCV       = errors.New("application has no cv attached")
)

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}
