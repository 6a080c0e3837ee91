package server

import "time"

const (
	entryTypeFile      = "file"
	entryTypeDirectory = "directory"
)

// directoryEntry describes one immediate child of a listed directory. Size is
// a pointer so that directory entries omit it entirely.
type directoryEntry struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     *int64 `json:"size,omitempty"`
	Modified string `json:"modified"`
}

type directoryPayload struct {
	Type     string           `json:"type"`
	Path     string           `json:"path"`
	Contents []directoryEntry `json:"contents"`
}

type filePayload struct {
	Type     string `json:"type"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
	Content  string `json:"content"`
}

func formatModTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
