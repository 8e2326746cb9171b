package builder

import (
	"errors"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkail/foliogen/internal/asset"
	"github.com/mkail/foliogen/internal/wizard"
)

// Focus zones within the certificates step.
const (
	certsZoneFields = iota
	certsZoneList
)

// CertificatesStep collects certifications. Each entry needs a name
// and issuer; an optional image file is encoded into the document as a
// data URI. Oversized images are rejected before the entry is added.
type CertificatesStep struct {
	st      *wizard.State
	fields  *fieldSet
	cursor  int
	zone    int
	errMsg  string
	loading bool
	width   int
	height  int
}

// NewCertificatesStep creates the certificates step.
func NewCertificatesStep(st *wizard.State) *CertificatesStep {
	fs := newFieldSet(
		newField("certificate-name", "Certificate name", "AWS Solutions Architect", ""),
		newField("certificate-issuer", "Issuer", "Amazon Web Services", ""),
		newField("certificate-image", "Badge image file (optional)", "/path/to/badge.png", ""),
	)
	fs.Focus(0)
	return &CertificatesStep{st: st, fields: fs}
}

// Init initializes the certificates step.
func (s *CertificatesStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the certificates step.
func (s *CertificatesStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case certImageMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return nil
		}
		s.add(msg.name, msg.issuer, msg.dataURI)
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			s.toggleZone()
			return nil
		}
		if s.zone == certsZoneList {
			return s.updateList(msg)
		}
		return s.updateFields(msg)
	}

	if s.zone == certsZoneFields {
		return s.fields.Update(msg)
	}
	return nil
}

func (s *CertificatesStep) updateFields(key tea.KeyPressMsg) tea.Cmd {
	if key.String() == "enter" {
		if s.loading {
			return nil
		}
		// All inputs empty means the user is done with this step.
		if s.fields.Empty() {
			return func() tea.Msg { return NextStepMsg{} }
		}

		name := s.fields.Value("certificate-name")
		issuer := s.fields.Value("certificate-issuer")
		imagePath := s.fields.Value("certificate-image")

		if imagePath != "" {
			s.loading = true
			return loadCertImage(name, issuer, imagePath)
		}
		s.add(name, issuer, "")
		return nil
	}

	if s.errMsg != "" {
		s.errMsg = ""
	}
	return s.fields.Update(key)
}

func (s *CertificatesStep) updateList(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.st.Certificates())-1 {
			s.cursor++
		}
	case "ctrl+x":
		s.st.RemoveCertificate(s.cursor)
		if n := len(s.st.Certificates()); s.cursor >= n {
			s.cursor = n - 1
		}
		if len(s.st.Certificates()) == 0 {
			s.toggleZone()
		}
	case "enter":
		return func() tea.Msg { return NextStepMsg{} }
	}
	return nil
}

// add appends the entry and clears the form on success.
func (s *CertificatesStep) add(name, issuer, image string) {
	if err := s.st.AddCertificate(name, issuer, image); err != nil {
		var ve *wizard.ValidationError
		if errors.As(err, &ve) {
			s.errMsg = ve.Message
			s.fields.FocusKey(ve.Field)
			return
		}
		s.errMsg = err.Error()
		return
	}
	s.fields.Clear()
	s.fields.Focus(0)
	s.errMsg = ""
}

// loadCertImage encodes the image file off the update loop. Size and
// read failures come back as the message's err without any state
// having been touched.
func loadCertImage(name, issuer, path string) tea.Cmd {
	return func() tea.Msg {
		uri, err := asset.DataURI(path)
		return certImageMsg{name: name, issuer: issuer, dataURI: uri, err: err}
	}
}

func (s *CertificatesStep) toggleZone() {
	if s.zone == certsZoneFields && len(s.st.Certificates()) > 0 {
		s.zone = certsZoneList
		s.fields.Blur()
		if s.cursor >= len(s.st.Certificates()) {
			s.cursor = len(s.st.Certificates()) - 1
		}
		return
	}
	s.zone = certsZoneFields
	s.fields.Focus(0)
}

// Commit is a no-op: entries are added to the state as they are
// confirmed.
func (s *CertificatesStep) Commit(*wizard.State) {}

// FocusField puts the cursor on the named input.
func (s *CertificatesStep) FocusField(field string) tea.Cmd {
	return s.fields.FocusKey(field)
}

// SetSize updates the dimensions for the certificates step.
func (s *CertificatesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.fields.SetWidth(min(width-4, 60))
}

// View renders the certificates step.
func (s *CertificatesStep) View() string {
	var rows []string
	rows = append(rows, styleInstruction.Render("Add certifications. Leave the form empty and press enter when done."))
	rows = append(rows, s.fields.View())

	if s.loading {
		rows = append(rows, styleNote.Render("encoding image…"))
	}
	if s.errMsg != "" {
		rows = append(rows, styleError.Render("✗ "+s.errMsg))
	}

	certs := s.st.Certificates()
	if len(certs) > 0 {
		rows = append(rows, "")
		for i, c := range certs {
			label := c.Name + " · " + c.Issuer
			if c.Image != "" {
				label += " 🎓"
			}
			if s.zone == certsZoneList && i == s.cursor {
				rows = append(rows, styleListCursor.Render("› "+label))
			} else {
				rows = append(rows, styleListItem.Render("  "+label))
			}
		}
	}

	rows = append(rows, "")
	hints := []string{"enter", "add / continue", "tab", "list", "esc", "back"}
	if s.zone == certsZoneList {
		hints = []string{"↑↓", "navigate", "ctrl+x", "remove", "tab", "form", "esc", "back"}
	}
	rows = append(rows, renderHintBar(hints...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
