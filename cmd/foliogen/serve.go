package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkail/foliogen/internal/config"
	"github.com/mkail/foliogen/internal/server"
)

var serveFlags struct {
	profile string
	port    int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a profile over HTTP for live theme browsing",
	Long: `Serve a profile file over HTTP.

The document is re-rendered on every request, so edits to the profile
show up on refresh, and any theme can be previewed with ?theme=name.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.profile, "profile", "p", "", "Profile YAML file (required)")
	serveCmd.Flags().IntVar(&serveFlags.port, "port", 0, "Port to listen on (default: $PORT or configured port)")
	_ = serveCmd.MarkFlagRequired("profile")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flag wins, then the PORT environment variable, then config.
	port := serveFlags.port
	if port == 0 {
		if p := os.Getenv("PORT"); p != "" {
			port, err = strconv.Atoi(p)
			if err != nil {
				return fmt.Errorf("invalid PORT %q: %w", p, err)
			}
		} else {
			port = cfg.Port
		}
	}

	if _, err := os.Stat(serveFlags.profile); err != nil {
		return fmt.Errorf("profile file: %w", err)
	}

	srv := server.New(serveFlags.profile, cfg.Theme)
	fmt.Printf("Serving %s on http://localhost:%d\n", serveFlags.profile, port)
	return srv.Run(fmt.Sprintf(":%d", port))
}
