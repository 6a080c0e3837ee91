//go:build unix

package server

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntryUnsupportedType(t *testing.T) {
	srv, root := newTestServer(t)

	fifoPath := filepath.Join(root, "pipe")
	require.NoError(t, syscall.Mkfifo(fifoPath, 0o600))

	_, err := srv.readEntry("pipe", fifoPath)
	assert.ErrorIs(t, err, errUnsupportedType)
}
