package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkail/foliogen/internal/config"
	"github.com/mkail/foliogen/internal/generator"
	"github.com/mkail/foliogen/internal/portfolio"
	"github.com/mkail/foliogen/internal/preview"
)

var generateFlags struct {
	profile string
	output  string
	theme   string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a portfolio from a saved profile without the builder",
	Long: `Generate a portfolio document from a profile YAML file.

The profile format is what 'foliogen build --save-profile' writes.
Useful for regenerating after editing the file by hand or for trying a
different theme without re-entering everything.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlags.profile, "profile", "p", "", "Profile YAML file (required)")
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "Output directory (default: configured output_dir)")
	generateCmd.Flags().StringVarP(&generateFlags.theme, "theme", "t", "", "Override the profile's theme")
	_ = generateCmd.MarkFlagRequired("profile")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	snap, err := portfolio.LoadProfile(generateFlags.profile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	if generateFlags.theme != "" {
		snap.Theme = generateFlags.theme
	} else if snap.Theme == "" {
		snap.Theme = cfg.Theme
	}

	doc, err := generator.Generate(snap)
	if err != nil {
		return fmt.Errorf("generating document: %w", err)
	}

	outputDir := generateFlags.output
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	path, err := preview.Save(doc, outputDir, snap.FileName())
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	fmt.Printf("Portfolio written to %s\n", path)
	return nil
}
