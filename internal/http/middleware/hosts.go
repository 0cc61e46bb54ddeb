package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AllowedHosts rejects requests whose Host is not listed. An entry starting
// with a dot matches the domain and all of its subdomains; "*" matches
// everything. With debug on, or an empty list, every host is accepted.
func AllowedHosts(hosts []string, debug bool) fiber.Handler {
	allowAll := debug || len(hosts) == 0
	var exact []string
	var suffixes []string
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case h == "*":
			allowAll = true
		case strings.HasPrefix(h, "."):
			suffixes = append(suffixes, h)
		case h != "":
			exact = append(exact, h)
		}
	}

	return func(c *fiber.Ctx) error {
		if allowAll {
			return c.Next()
		}
		host := strings.ToLower(c.Hostname())
		if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.HasSuffix(host, "]") {
			host = host[:i]
		}
		host = strings.TrimSuffix(strings.Trim(host, "[]"), ".")
		for _, h := range exact {
			if host == h {
				return c.Next()
			}
		}
		for _, s := range suffixes {
			if host == s[1:] || strings.HasSuffix(host, s) {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid host header")
	}
}
