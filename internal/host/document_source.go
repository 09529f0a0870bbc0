// Package host is the narrow boundary between the assistant core and the
// editor it runs in: where documents come from and where results go.
package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Document struct {
	Id      string
	Content string
}

// DocumentSource yields the active document, or nil when there is none.
type DocumentSource interface {
	ActiveDocument(ctx context.Context) (*Document, error)
}

// FileSource treats a file on disk as the active document. The identifier is
// the file's base name, as editors key notes by filename.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) ActiveDocument(ctx context.Context) (*Document, error) {
	if s.Path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	return &Document{
		Id:      filepath.Base(s.Path),
		Content: string(raw),
	}, nil
}
