package main

import (
	"context"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkail/foliogen/internal/logger"
)

const (
	logoText1 = "█▀▀ █▀█ █   █ █▀█ █▀▀ █▀▀ █▄ █"
	logoText2 = "█▀  █▄█ █▄▄ █ █▄█ █▄█ ██▄ █ ▀█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	// A project .env can carry FOLIOGEN_* and PORT overrides; missing
	// files are fine.
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foliogen",
	Short: "Single-page portfolio generator with an interactive builder",
}

// renderLogo creates the two-tone logo.
func renderLogo() string {
	line1 := lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")).Render(logoText1)
	line2 := lipgloss.NewStyle().Foreground(lipgloss.Color("#b4befe")).Render(logoText2)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

foliogen builds a single-page portfolio website from an interactive
eight-step builder. The generated document is fully self-contained:
styling and certificate images are embedded, so it works from disk
with no server and no external assets.`

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(initCmd)
}
