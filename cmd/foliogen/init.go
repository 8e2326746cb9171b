package main

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/mkail/foliogen/internal/config"
	"github.com/mkail/foliogen/internal/generator"
)

var initFlags struct {
	project bool
	force   bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a foliogen configuration file",
	Long: `Create a foliogen configuration file with a short prompt session.

By default, creates a global config at ~/.config/foliogen/foliogen.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if initFlags.project {
		targetPath = config.ProjectPath()
	}

	if !initFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	namePrompt := promptui.Prompt{Label: "Author name (used to pre-fill the builder)"}
	name, err := namePrompt.Run()
	if err != nil {
		return err
	}

	emailPrompt := promptui.Prompt{Label: "Author email"}
	email, err := emailPrompt.Run()
	if err != nil {
		return err
	}

	themeSelect := promptui.Select{
		Label: "Default theme",
		Items: generator.Themes(),
	}
	_, theme, err := themeSelect.Run()
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Theme:       theme,
		OutputDir:   ".",
		OpenPreview: true,
		LogLevel:    "info",
		LogFile:     "",
		DraftsDB:    config.DefaultDraftsDB(),
		Port:        8080,
		AuthorName:  name,
		AuthorEmail: email,
	}

	if initFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'foliogen build' to get started.")
	return nil
}

// fileExists checks if a file exists (helper for the init command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
