package server

import (
	"path"
	"path/filepath"
	"strings"
)

// resolvePath maps a client-supplied relative path to an absolute path under
// the configured root. The check is purely lexical and happens before the
// join: the request is slash-normalized and rejected if any parent-directory
// segment survives, so no crafted input can escape via join order. A symlink
// inside the root that points outside it is not caught; containment is
// enforced at the string level only.
func (s *Server) resolvePath(requestPath string) (string, error) {
	cleaned := path.Clean(strings.TrimPrefix(requestPath, "/"))

	for _, segment := range strings.Split(cleaned, "/") {
		if segment == ".." {
			return "", errInvalidPath
		}
	}

	if cleaned == "." {
		return s.absoluteRoot, nil
	}

	return filepath.Join(s.absoluteRoot, filepath.FromSlash(cleaned)), nil
}
