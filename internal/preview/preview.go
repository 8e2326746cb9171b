// Package preview shows a generated document in the user's browser and
// writes it to its final location on disk.
package preview

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open writes the document to a temporary file and opens it in the
// default browser. Callers treat failure as a degraded preview, not a
// fatal error: the save path is still offered.
func Open(doc string) error {
	tmp, err := os.CreateTemp("", "foliogen-preview-*.html")
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("writing preview file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing preview file: %w", err)
	}

	return openBrowser(tmp.Name())
}

// Save writes the document into dir under the given file name and
// returns the full path.
func Save(doc, dir, fileName string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}
	return path, nil
}

// openBrowser launches the platform's default URL handler.
func openBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	// Detach: the browser process outlives us and its exit status is
	// not interesting.
	go func() { _ = cmd.Wait() }()
	return nil
}
