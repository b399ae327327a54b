package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ErrTemplateNotFound is returned by a TemplateStore when no template body
// exists for an identifier.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateStore loads template bodies by identifier.
type TemplateStore interface {
	Load(id string) (string, error)
}

// FSStore reads templates from a directory of an fs.FS.
type FSStore struct {
	fsys fs.FS
	root string
}

// NewFSStore returns a store reading ids relative to root inside fsys.
func NewFSStore(fsys fs.FS, root string) *FSStore {
	return &FSStore{fsys: fsys, root: root}
}

// Sub returns a store rooted at a subdirectory of s.
func (s *FSStore) Sub(dir string) *FSStore {
	return &FSStore{fsys: s.fsys, root: path.Join(s.root, dir)}
}

// Load implements TemplateStore.
func (s *FSStore) Load(id string) (string, error) {
	p := path.Join(s.root, id)
	data, err := fs.ReadFile(s.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, p)
	}
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", p, err)
	}
	return string(data), nil
}

// FileSink persists rendered files. EnsureDir is called by the assembler
// before any Write into that directory.
type FileSink interface {
	EnsureDir(dir string) error
	Write(path, content string) error
}

// DiskSink writes to the local filesystem. With DryRun set nothing is
// created or written.
type DiskSink struct {
	DryRun bool
}

// EnsureDir implements FileSink.
func (d DiskSink) EnsureDir(dir string) error {
	if d.DryRun {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// Write implements FileSink.
func (d DiskSink) Write(path, content string) error {
	if d.DryRun {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteFile ensures the parent directory of path exists, then writes.
func WriteFile(sink FileSink, path, content string) error {
	if err := sink.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return sink.Write(path, content)
}
