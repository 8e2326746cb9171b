package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/mkail/foliogen/internal/generator"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes with color swatches",
	RunE:  runThemes,
}

func runThemes(cmd *cobra.Command, args []string) error {
	nameStyle := lipgloss.NewStyle().Bold(true).Width(8)

	for _, p := range generator.Palettes() {
		swatches := ""
		for _, hex := range []string{p.Primary, p.Secondary, p.Background, p.CardBackground, p.Text} {
			swatches += lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
		}
		fmt.Printf("%s %s  %s\n", nameStyle.Render(p.Name), swatches, p.Primary)
	}

	fmt.Println("\nUse a theme with 'foliogen build --theme <name>' or '?theme=<name>' while serving.")
	return nil
}
