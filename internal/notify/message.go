package notify

import (
	"fmt"
	"strings"

	"formsapi/internal/model"
	"formsapi/internal/normalize"
)

// Context carries the request details shown in every notification.
type Context struct {
	Lang    normalize.Lang
	Referer string
	IP      string
}

// ContactText renders a contact submission. rawPosition is the value the
// form posted: a submitted code is shown as the localized problem label,
// anything else is echoed as the position text it was.
func ContactText(s *model.ContactSubmission, rawPosition string, c Context) string {
	rawPosition = strings.TrimSpace(rawPosition)
	field, value := "Position", rawPosition
	if normalize.Reasons.IsCode(rawPosition) {
		field, value = "Problem", normalize.ReasonLabel(c.Lang, s.Position)
	}

	var b strings.Builder
	b.WriteString("🦷 NEW CONTACT FORM\n")
	fmt.Fprintf(&b, "🌍 Lang: %s\n", c.Lang)
	fmt.Fprintf(&b, "👤 %s %s\n", s.FirstName, s.LastName)
	fmt.Fprintf(&b, "📧 %s\n", s.Email)
	fmt.Fprintf(&b, "📞 %s\n", s.Phone)
	fmt.Fprintf(&b, "📌 %s: %s\n", field, value)
	fmt.Fprintf(&b, "📍 %s, %s, %s\n", s.City, s.Province, s.Country)
	fmt.Fprintf(&b, "🗓 Days: %s\n", orDash(model.Deref(s.Days)))
	fmt.Fprintf(&b, "💬 Message: %s\n", orDash(model.Deref(s.Message)))
	fmt.Fprintf(&b, "🧾 Form ID: %s\n", orDash(model.Deref(s.SourceFormID)))
	fmt.Fprintf(&b, "🌐 Page: %s\n", orDash(c.Referer))
	fmt.Fprintf(&b, "🌐 IP: %s\n", orDash(c.IP))
	return b.String()
}

// JobText renders a job application with the position as submitted.
func JobText(a *model.JobApplication, rawPosition string, c Context) string {
	var b strings.Builder
	b.WriteString("💼 NEW JOB APPLICATION\n")
	fmt.Fprintf(&b, "🌍 Lang: %s\n", c.Lang)
	fmt.Fprintf(&b, "👤 %s %s\n", a.Name, a.Surname)
	fmt.Fprintf(&b, "📧 %s\n", a.Email)
	fmt.Fprintf(&b, "📞 %s\n", a.Phone)
	fmt.Fprintf(&b, "📌 Position: %s\n", strings.TrimSpace(rawPosition))
	fmt.Fprintf(&b, "⏰ Hours: %s\n", orDash(model.Deref(a.Hours)))
	fmt.Fprintf(&b, "💬 Message: %s\n", orDash(model.Deref(a.Message)))
	fmt.Fprintf(&b, "🧾 Form ID: %s\n", orDash(model.Deref(a.SourceFormID)))
	fmt.Fprintf(&b, "🌐 Page: %s\n", orDash(c.Referer))
	fmt.Fprintf(&b, "🌐 IP: %s\n", orDash(c.IP))
	return b.String()
}

// CVCaption is the caption of the forwarded CV document.
func CVCaption(a *model.JobApplication) string {
	return fmt.Sprintf("CV from %s %s (%s)", a.Name, a.Surname, a.Email)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
