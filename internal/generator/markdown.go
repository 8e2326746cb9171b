package generator

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var bioMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var bioPolicy = bluemonday.UGCPolicy()

// renderBio converts the markdown bio to sanitized HTML for embedding.
// An empty bio yields empty HTML so the template can elide the block.
func renderBio(bio string) (template.HTML, error) {
	if bio == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := bioMarkdown.Convert([]byte(bio), &buf); err != nil {
		return "", fmt.Errorf("rendering bio: %w", err)
	}

	return template.HTML(bioPolicy.SanitizeBytes(buf.Bytes())), nil
}
