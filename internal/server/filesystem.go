package server

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// readEntry stats absPath and produces the response payload for it: a sorted
// listing for a directory, full text content for a regular file. requestPath
// is echoed back in the payload exactly as the client sent it.
func (s *Server) readEntry(requestPath, absPath string) (any, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errPathNotFound
		}

		return nil, err
	}

	switch {
	case info.IsDir():
		contents, err := s.listEntries(absPath)
		if err != nil {
			return nil, err
		}

		return directoryPayload{
			Type:     entryTypeDirectory,
			Path:     requestPath,
			Contents: contents,
		}, nil

	case info.Mode().IsRegular():
		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, err
		}

		return filePayload{
			Type:     entryTypeFile,
			Path:     requestPath,
			Size:     info.Size(),
			Modified: formatModTime(info.ModTime()),
			Content:  string(data),
		}, nil

	default:
		return nil, errUnsupportedType
	}
}

func (s *Server) listEntries(absDir string) ([]directoryEntry, error) {
	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, err
	}

	entries := s.buildEntries(absDir, dirEntries)

	// Directories before files, then name order within each kind. A fresh
	// collator per call: collate.Collator is not safe for concurrent use.
	collator := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type == entryTypeDirectory
		}

		return collator.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	return entries, nil
}

// buildEntries converts raw directory entries to response values. An entry
// whose metadata cannot be read is logged and skipped; one bad child never
// fails the whole listing.
func (s *Server) buildEntries(absDir string, dirEntries []fs.DirEntry) []directoryEntry {
	entries := make([]directoryEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		info, err := entry.Info()
		if err != nil {
			s.logger.Error("skipping entry, metadata unavailable",
				"dir", absDir,
				"name", entry.Name(),
				"error", err,
			)

			continue
		}

		if info.IsDir() {
			entries = append(entries, directoryEntry{
				Name:     entry.Name(),
				Type:     entryTypeDirectory,
				Modified: formatModTime(info.ModTime()),
			})

			continue
		}

		size := info.Size()
		entries = append(entries, directoryEntry{
			Name:     entry.Name(),
			Type:     entryTypeFile,
			Size:     &size,
			Modified: formatModTime(info.ModTime()),
		})
	}

	return entries
}
