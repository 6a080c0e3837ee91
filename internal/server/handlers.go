package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleBrowse(c *gin.Context) {
	requestPath := strings.TrimPrefix(c.Param("path"), "/")

	absolutePath, err := s.resolvePath(requestPath)
	if err != nil {
		s.respondError(c, requestPath, err)
		return
	}

	s.logger.Info("browse", "path", requestPath, "resolved", absolutePath)

	payload, err := s.readEntry(requestPath, absolutePath)
	if err != nil {
		s.respondError(c, requestPath, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

// respondError maps classified errors to their status and message; anything
// unclassified is logged in full and collapsed to a generic 500 so filesystem
// detail never reaches the client.
func (s *Server) respondError(c *gin.Context, requestPath string, err error) {
	s.logger.Error("browse failed", "path", requestPath, "error", err)

	var httpErr *httpError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, gin.H{"error": httpErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
