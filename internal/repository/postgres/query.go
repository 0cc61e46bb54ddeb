package postgres

import (
	"fmt"
	"strings"
	"time"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
// Each condition is a format string whose %[1]s verbs become the next $n.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(cond, fmt.Sprintf("$%d", len(w.args))))
}

// raw adds a condition without an argument.
func (w *whereBuilder) raw(cond string) {
	w.clauses = append(w.clauses, cond)
}

func (w *whereBuilder) eq(column, value string) {
	if value != "" {
		w.add(column+" = %[1]s", value)
	}
}

func (w *whereBuilder) boolean(column string, value *bool) {
	if value != nil {
		w.add(column+" = %[1]s", *value)
	}
}

func (w *whereBuilder) createdBetween(from, to *time.Time) {
	if from != nil {
		w.add("created_at >= %[1]s", *from)
	}
	if to != nil {
		w.add("created_at < %[1]s", *to)
	}
}

// search matches the term case-insensitively against any of columns.
func (w *whereBuilder) search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE %[1]s"
	}
	w.add("("+strings.Join(parts, " OR ")+")", "%"+escapeLike(term)+"%")
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page appends LIMIT/OFFSET when limit is positive and returns the final
// query with its arguments.
func (w *whereBuilder) page(query string, limit, offset int) (string, []any) {
	args := append([]any(nil), w.args...)
	if limit <= 0 {
		return query, args
	}
	args = append(args, limit, offset)
	return fmt.Sprintf("%s LIMIT $%d OFFSET $%d", query, len(args)-1, len(args)), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
