// Package server serves a portfolio profile over HTTP for live theme
// browsing: the document is re-rendered on every request, so edits to
// the profile file and ?theme= overrides show up on refresh.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkail/foliogen/internal/generator"
	"github.com/mkail/foliogen/internal/logger"
	"github.com/mkail/foliogen/internal/portfolio"
)

// Server renders one profile file on demand.
type Server struct {
	profilePath  string
	defaultTheme string
	engine       *gin.Engine
}

// New creates a preview server for the given profile file. When the
// profile carries no theme of its own, defaultTheme applies; both are
// overridable per request with ?theme=name.
func New(profilePath, defaultTheme string) *Server {
	s := &Server{
		profilePath:  profilePath,
		defaultTheme: defaultTheme,
		engine:       gin.Default(),
	}

	s.engine.GET("/", s.handlePortfolio)
	s.engine.GET("/themes", s.handleThemes)

	return s
}

// Run starts the server on the given address (e.g. ":8080"). It blocks
// until the server stops.
func (s *Server) Run(addr string) error {
	logger.Info("serving %s on %s", s.profilePath, addr)
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handlePortfolio(c *gin.Context) {
	snap, err := portfolio.LoadProfile(s.profilePath)
	if err != nil {
		logger.Error("loading profile: %v", err)
		c.String(http.StatusInternalServerError, "failed to load profile: %v", err)
		return
	}

	// Query param wins over the profile's theme, which wins over the
	// configured default. Unknown names fall back to dark downstream.
	if snap.Theme == "" {
		snap.Theme = s.defaultTheme
	}
	if theme := c.Query("theme"); theme != "" {
		snap.Theme = theme
	}

	doc, err := generator.Generate(snap)
	if err != nil {
		logger.Error("rendering portfolio: %v", err)
		c.String(http.StatusInternalServerError, "failed to render portfolio: %v", err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

func (s *Server) handleThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": generator.Themes()})
}
