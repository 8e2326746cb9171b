package builder

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"

	"github.com/mkail/foliogen/internal/wizard"
)

// summaryMarkdown builds the review summary shown on the final step.
func summaryMarkdown(st *wizard.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", orUnset(st.FullName))
	fmt.Fprintf(&b, "**%s**", orUnset(st.Title))
	if st.Domain != "" {
		fmt.Fprintf(&b, " · %s", st.Domain)
	}
	if st.Experience != "" {
		fmt.Fprintf(&b, " · %s", st.Experience)
	}
	b.WriteString("\n\n")

	if st.Bio != "" {
		b.WriteString(st.Bio)
		b.WriteString("\n\n")
	}

	if skills := st.Skills(); len(skills) > 0 {
		fmt.Fprintf(&b, "## Skills (%d)\n\n%s\n\n", len(skills), strings.Join(skills, ", "))
	}

	if certs := st.Certificates(); len(certs) > 0 {
		fmt.Fprintf(&b, "## Certifications (%d)\n\n", len(certs))
		for _, c := range certs {
			fmt.Fprintf(&b, "- %s · %s\n", c.Name, c.Issuer)
		}
		b.WriteString("\n")
	}

	if work := st.WorkEntries(); len(work) > 0 {
		fmt.Fprintf(&b, "## Work Experience (%d)\n\n", len(work))
		for _, w := range work {
			fmt.Fprintf(&b, "- %s · %s\n", w.Title, w.Company)
		}
		b.WriteString("\n")
	}

	projects := st.Projects()
	fmt.Fprintf(&b, "## Projects (%d)\n\n", len(projects))
	for i, p := range projects {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = fmt.Sprintf("Project %d (unnamed)", i+1)
		}
		fmt.Fprintf(&b, "- %s\n", name)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Contact\n\n")
	fmt.Fprintf(&b, "- Email: %s\n", orUnset(st.Email))
	if st.Phone != "" {
		fmt.Fprintf(&b, "- Phone: %s\n", st.Phone)
	}
	if st.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", st.Location)
	}
	for _, link := range []struct{ label, value string }{
		{"LinkedIn", st.Socials.LinkedIn},
		{"GitHub", st.Socials.GitHub},
		{"Website", st.Socials.Website},
		{"Handle", st.Socials.Handle},
	} {
		if link.value != "" {
			fmt.Fprintf(&b, "- %s: %s\n", link.label, link.value)
		}
	}

	return b.String()
}

func orUnset(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not set)"
	}
	return s
}

// renderSummary renders the summary markdown for the viewport. Falls
// back to plain text if rendering fails.
func renderSummary(content string, width int) string {
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSuffix(rendered, "\n")
}
