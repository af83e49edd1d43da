package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CandidateCookie is the whole identity mechanism: the trimmed name in
// a client-held cookie. No session table, no password. Duplicate names
// collide by design (the app runs in a proctored room).
const CandidateCookie = "candidate_name"

// GetCandidateName reads the identity cookie. Empty string means no
// identity; callers redirect to the landing page in that case.
func GetCandidateName(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(CandidateCookie))
}

// SetCandidateCookie binds the (already trimmed) name to the client.
// Deliberately not HTTPOnly, matching the low-security proctored-room
// trade-off of the reference system.
func SetCandidateCookie(c *fiber.Ctx, name string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     CandidateCookie,
		Value:    name,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCandidateCookie logs the candidate out.
func ClearCandidateCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CandidateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
