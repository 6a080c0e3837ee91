package server

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a Server rooted in a fresh temp directory with a
// discarding logger. Shared by the resolver, reader and handler tests.
func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	root := t.TempDir()
	srv, err := New(Config{
		Root:   root,
		Prefix: "/api/files",
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return srv, srv.absoluteRoot
}

func TestResolvePathRejectsTraversal(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []string{
		"..",
		"../",
		"../etc/passwd",
		"sub/../../escape",
		"a/b/../../../c",
		"./../x",
	}

	for _, requestPath := range cases {
		t.Run(requestPath, func(t *testing.T) {
			_, err := srv.resolvePath(requestPath)
			assert.ErrorIs(t, err, errInvalidPath)
		})
	}
}

func TestResolvePathEmptyIsRoot(t *testing.T) {
	srv, root := newTestServer(t)

	for _, requestPath := range []string{"", "/", "."} {
		resolved, err := srv.resolvePath(requestPath)
		require.NoError(t, err)
		assert.Equal(t, root, resolved)
	}
}

func TestResolvePathNormalizesAndJoins(t *testing.T) {
	srv, root := newTestServer(t)

	cases := map[string]string{
		"sub/file.txt":     filepath.Join(root, "sub", "file.txt"),
		"/sub/file.txt":    filepath.Join(root, "sub", "file.txt"),
		"./sub//file.txt":  filepath.Join(root, "sub", "file.txt"),
		"sub/./file.txt":   filepath.Join(root, "sub", "file.txt"),
		"sub/skip/../f.md": filepath.Join(root, "sub", "f.md"),
	}

	for requestPath, want := range cases {
		resolved, err := srv.resolvePath(requestPath)
		require.NoError(t, err, "path %q", requestPath)
		assert.Equal(t, want, resolved, "path %q", requestPath)
	}
}
