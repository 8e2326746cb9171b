package builder

// NextStepMsg asks the builder to validate the current step and move
// forward.
type NextStepMsg struct{}

// PrevStepMsg asks the builder to move one step back. Going back never
// validates.
type PrevStepMsg struct{}

// GenerateMsg is sent from the final step when the user confirms the
// review and wants the document generated.
type GenerateMsg struct{}

// BioEditedMsg carries bio text back from the external editor.
type BioEditedMsg struct {
	Content string
}

// certImageMsg carries the result of encoding a certificate image file
// into a data URI. The pending name and issuer ride along so the entry
// can be added once the image is ready.
type certImageMsg struct {
	name    string
	issuer  string
	dataURI string
	err     error
}
