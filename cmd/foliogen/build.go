package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/mkail/foliogen/internal/config"
	"github.com/mkail/foliogen/internal/draft"
	"github.com/mkail/foliogen/internal/generator"
	"github.com/mkail/foliogen/internal/logger"
	"github.com/mkail/foliogen/internal/portfolio"
	"github.com/mkail/foliogen/internal/preview"
	"github.com/mkail/foliogen/internal/tui/builder"
	"github.com/mkail/foliogen/internal/wizard"
)

var buildFlags struct {
	resume      bool
	output      string
	theme       string
	noPreview   bool
	saveProfile string
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the interactive portfolio builder",
	Long: `Run the interactive portfolio builder.

The build command walks through eight steps collecting your details,
then generates a self-contained HTML document, opens it in the browser
for review, and saves it where you choose. Progress is autosaved to a
draft after every step; an interrupted session continues with --resume.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildFlags.resume, "resume", "r", false, "Continue the most recent draft")
	buildCmd.Flags().StringVarP(&buildFlags.output, "output", "o", "", "Output directory (default: configured output_dir)")
	buildCmd.Flags().StringVarP(&buildFlags.theme, "theme", "t", "", "Starting theme (default: configured theme)")
	buildCmd.Flags().BoolVar(&buildFlags.noPreview, "no-preview", false, "Skip opening the browser preview")
	buildCmd.Flags().StringVar(&buildFlags.saveProfile, "save-profile", "", "Also write the collected data as a profile YAML file")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	outputDir := buildFlags.output
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	// A broken draft store degrades to a session without autosave.
	store, err := draft.Open(cfg.DraftsDB)
	if err != nil {
		logger.Warn("draft store unavailable, autosave disabled: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	state := wizard.New()
	var dr *draft.Draft

	if buildFlags.resume {
		if store == nil {
			return fmt.Errorf("cannot resume: draft store unavailable")
		}
		d, err := store.Latest()
		switch {
		case errors.Is(err, draft.ErrNoDrafts):
			fmt.Println("No saved drafts, starting fresh.")
		case err != nil:
			return fmt.Errorf("loading draft: %w", err)
		default:
			state = d.State
			dr = d
			fmt.Printf("Resuming draft %q from %s.\n", d.Name, d.UpdatedAt.Format("2006-01-02 15:04"))
		}
	}
	if store != nil && dr == nil {
		dr = draft.NewDraft(state)
	}

	// Seed a fresh session from config.
	if state.FullName == "" {
		state.FullName = cfg.AuthorName
	}
	if state.Email == "" {
		state.Email = cfg.AuthorEmail
	}
	if state.Theme == "" {
		if buildFlags.theme != "" {
			state.SelectTheme(buildFlags.theme)
		} else {
			state.SelectTheme(cfg.Theme)
		}
	}

	snap, err := builder.RunBuilder(state, store, dr)
	if errors.Is(err, builder.ErrCancelled) {
		if store != nil {
			fmt.Println("Cancelled. Your progress is saved; continue with 'foliogen build --resume'.")
		} else {
			fmt.Println("Cancelled.")
		}
		return nil
	}
	if err != nil {
		return err
	}

	doc, err := generator.Generate(snap)
	if err != nil {
		return fmt.Errorf("generating document: %w", err)
	}

	// The preview is best effort: a headless machine still gets the
	// document saved.
	if !buildFlags.noPreview && cfg.OpenPreview {
		if err := preview.Open(doc); err != nil {
			logger.Debug("browser preview unavailable: %v", err)
		}
	}

	confirm := promptui.Prompt{
		Label:     fmt.Sprintf("Save %s to %s", snap.FileName(), outputDir),
		IsConfirm: true,
		Default:   "y",
	}
	// The session ends with the generation either way; only the draft
	// survives a declined save.
	if _, err := confirm.Run(); err != nil {
		state.Reset()
		fmt.Println("Not saved. Your draft is kept; continue with 'foliogen build --resume'.")
		return nil
	}

	path, err := preview.Save(doc, outputDir, snap.FileName())
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	fmt.Printf("Portfolio written to %s\n", path)

	if buildFlags.saveProfile != "" {
		if err := portfolio.SaveProfile(snap, buildFlags.saveProfile); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
		fmt.Printf("Profile written to %s\n", buildFlags.saveProfile)
	}

	// The session is done: reset for the next run and drop the draft.
	state.Reset()
	if store != nil && dr != nil {
		if err := store.Delete(dr.ID); err != nil {
			logger.Warn("removing finished draft: %v", err)
		}
	}

	return nil
}
