package handler

import (
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const indexDocument = "index.html"

// resolveSitePath maps a request path onto a file below root. Paths that
// escape root are rejected.
func resolveSitePath(root, reqPath string) (string, bool) {
	if strings.Contains(reqPath, "\x00") {
		return "", false
	}
	clean := path.Clean("/" + strings.ReplaceAll(reqPath, "\\", "/"))
	full := filepath.Join(root, filepath.FromSlash(clean))
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}

// StaticSite serves the prebuilt site under root. Directories resolve to
// their index document; anything missing is a 404.
func StaticSite(root string) fiber.Handler {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}
	return func(c *fiber.Ctx) error {
		if _, err := os.Stat(absRoot); err != nil {
			return fiber.ErrNotFound
		}
		full, ok := resolveSitePath(absRoot, c.Path())
		if !ok {
			return fiber.ErrNotFound
		}
		fi, err := os.Stat(full)
		if err != nil {
			return fiber.ErrNotFound
		}
		if fi.IsDir() {
			full = filepath.Join(full, indexDocument)
			if fi, err = os.Stat(full); err != nil || fi.IsDir() {
				return fiber.ErrNotFound
			}
		}

		if err := c.SendFile(full); err != nil {
			return err
		}
		ct := mime.TypeByExtension(filepath.Ext(full))
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, ct)
		return nil
	}
}
