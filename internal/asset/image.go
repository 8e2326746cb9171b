// Package asset converts local image files into data URIs suitable for
// embedding into the generated document.
package asset

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// MaxImageSize is the upper bound for embedded certificate images.
const MaxImageSize = 5 * 1024 * 1024

// ErrImageTooLarge is returned when a file exceeds MaxImageSize.
// Callers surface it before any certificate state is mutated.
var ErrImageTooLarge = errors.New("image exceeds the 5 MB size limit")

// DataURI reads the file at path and returns it as a base64 data URI.
// Files larger than MaxImageSize are rejected with ErrImageTooLarge
// without reading their content. The media type is sniffed from the
// file's leading bytes.
func DataURI(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	if info.Size() > MaxImageSize {
		return "", ErrImageTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	mediaType := http.DetectContentType(data)
	encoded := base64.StdEncoding.EncodeToString(data)
	return "data:" + mediaType + ";base64," + encoded, nil
}
