// Package server implements a read-only JSON file browser confined to a
// single root directory, exposed as one route on a host gin router.
package server

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Config fixes the endpoint's collaborators at construction time. It is
// captured by the Server and never mutated afterwards.
type Config struct {
	// Root is the directory all served paths are confined to.
	Root string

	// Prefix is the URL path the browse route is mounted under.
	Prefix string

	// Logger receives one info line per request plus error lines for
	// filesystem failures. Nil falls back to slog.Default().
	Logger *slog.Logger

	// Authorize runs before path resolution and may abort the request.
	// Nil means every request is allowed.
	Authorize gin.HandlerFunc
}

type Server struct {
	absoluteRoot string
	prefix       string
	logger       *slog.Logger
	authorize    gin.HandlerFunc
}

func New(cfg Config) (*Server, error) {
	absoluteRoot, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absoluteRoot)
	if err != nil {
		return nil, fmt.Errorf("root directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", absoluteRoot)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authorize := cfg.Authorize
	if authorize == nil {
		authorize = func(*gin.Context) {}
	}

	return &Server{
		absoluteRoot: absoluteRoot,
		prefix:       strings.TrimSuffix(cfg.Prefix, "/"),
		logger:       logger,
		authorize:    authorize,
	}, nil
}

// Register mounts GET {prefix}/*path on the host router, with the
// authorization hook ahead of the browse handler.
func (s *Server) Register(r gin.IRouter) {
	r.GET(s.prefix+"/*path", s.authorize, s.handleBrowse)
}
