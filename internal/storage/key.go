package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// CVPrefix is the key prefix of every stored CV.
const CVPrefix = "cv_uploads"

const defaultContentType = "application/octet-stream"

// CVKey derives the storage key of an application's CV from its ID and
// creation month: cv_uploads/<yyyy>/<mm>/<id>_<filename>.
func CVKey(id string, createdAt time.Time, filename string) string {
	return fmt.Sprintf("%s/%04d/%02d/%s_%s", CVPrefix, createdAt.Year(), int(createdAt.Month()), id, cleanFilename(filename))
}

// cleanFilename keeps only the base name of a client supplied filename.
func cleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.TrimSpace(name)
	if name == "." || name == "/" || name == ".." || name == "" {
		return "cv"
	}
	return name
}

// CheckCVKey rejects keys that are not clean paths below CVPrefix.
func CheckCVKey(key string) error {
	if !strings.HasPrefix(key, CVPrefix+"/") || path.Clean(key) != key {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	return nil
}
