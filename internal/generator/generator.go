// Package generator renders a collected portfolio snapshot into a
// single self-contained HTML document. Rendering is a pure mapping:
// identical snapshots produce byte-identical documents, and all text
// passes through html/template's contextual escaping.
package generator

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mkail/foliogen/internal/portfolio"
)

var docTmpl = template.Must(template.New("portfolio").Parse(docTemplate))

// certView is a certificate prepared for the template. Image is typed
// as a URL so the embedded data URI survives template sanitization.
type certView struct {
	Name   string
	Issuer string
	Image  template.URL
}

// contactItem is one contact channel. A non-empty Href renders as a
// link; otherwise the value renders as plain text.
type contactItem struct {
	Label string
	Href  template.URL
	Text  string
}

// pageData is the root object handed to the document template.
type pageData struct {
	Snap           *portfolio.Snapshot
	Palette        Palette
	Initials       string
	ExperienceLine string
	BioHTML        template.HTML
	Certs          []certView
	Contacts       []contactItem
}

// Generate renders the snapshot into a complete HTML document string.
// Sections backed by empty data are omitted; the header block is always
// present. Unknown theme names fall back to the default palette.
func Generate(snap *portfolio.Snapshot) (string, error) {
	bioHTML, err := renderBio(snap.Bio)
	if err != nil {
		return "", err
	}

	data := pageData{
		Snap:           snap,
		Palette:        PaletteFor(snap.Theme),
		Initials:       initials(snap.FullName),
		ExperienceLine: experienceLine(snap),
		BioHTML:        bioHTML,
		Certs:          certViews(snap.Certificates),
		Contacts:       contactItems(snap),
	}

	var b strings.Builder
	if err := docTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return b.String(), nil
}

// initials derives up to two uppercase initials for the avatar
// fallback.
func initials(name string) string {
	fields := strings.Fields(name)
	var b strings.Builder
	for i, f := range fields {
		if i >= 2 {
			break
		}
		runes := []rune(f)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// experienceLine joins the experience level and domain for the header
// meta line, skipping whichever is empty.
func experienceLine(snap *portfolio.Snapshot) string {
	var parts []string
	if snap.Experience != "" {
		parts = append(parts, snap.Experience)
	}
	if snap.Domain != "" {
		parts = append(parts, snap.Domain)
	}
	return strings.Join(parts, " · ")
}

// certViews wraps certificates for the template. Only data URIs with
// an image media type are embedded; anything else falls back to the
// generic icon.
func certViews(certs []portfolio.Certificate) []certView {
	if len(certs) == 0 {
		return nil
	}
	out := make([]certView, 0, len(certs))
	for _, c := range certs {
		v := certView{Name: c.Name, Issuer: c.Issuer}
		if strings.HasPrefix(c.Image, "data:image/") {
			v.Image = template.URL(c.Image)
		}
		out = append(out, v)
	}
	return out
}

// contactItems assembles the contact section: only channels with
// non-empty values, each as an actionable link where one exists
// (mailto, tel, web URL) and plain text otherwise.
func contactItems(snap *portfolio.Snapshot) []contactItem {
	var items []contactItem

	if snap.Email != "" {
		items = append(items, contactItem{
			Label: "Email",
			Href:  template.URL("mailto:" + snap.Email),
			Text:  snap.Email,
		})
	}
	if snap.Phone != "" {
		items = append(items, contactItem{
			Label: "Phone",
			Href:  template.URL("tel:" + strings.Map(keepDialable, snap.Phone)),
			Text:  snap.Phone,
		})
	}
	if snap.Location != "" {
		items = append(items, contactItem{Label: "Location", Text: snap.Location})
	}
	if snap.Socials.LinkedIn != "" {
		items = append(items, contactItem{
			Label: "LinkedIn",
			Href:  webURL(snap.Socials.LinkedIn),
			Text:  snap.Socials.LinkedIn,
		})
	}
	if snap.Socials.GitHub != "" {
		items = append(items, contactItem{
			Label: "GitHub",
			Href:  webURL(snap.Socials.GitHub),
			Text:  snap.Socials.GitHub,
		})
	}
	if snap.Socials.Website != "" {
		items = append(items, contactItem{
			Label: "Website",
			Href:  webURL(snap.Socials.Website),
			Text:  snap.Socials.Website,
		})
	}
	if snap.Socials.Handle != "" {
		items = append(items, contactItem{Label: "Social", Text: snap.Socials.Handle})
	}

	return items
}

// keepDialable strips everything but digits and a leading plus from a
// phone number for the tel: reference.
func keepDialable(r rune) rune {
	if r >= '0' && r <= '9' || r == '+' {
		return r
	}
	return -1
}

// webURL normalizes a user-entered link for use as an href, assuming
// https when no scheme was typed.
func webURL(raw string) template.URL {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return template.URL(raw)
	}
	return template.URL("https://" + raw)
}
