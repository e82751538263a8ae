package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/moorara/helpsync/pkg/log"
)

const tempFilePrefix = ".helpsync-"

// Document is a generic abstraction for reading and writing a text document as a whole.
type Document interface {
	Read() (string, error)
	Write(string) error
}

// File implements the Document interface for a file on disk.
type File struct {
	logger log.Logger
	path   string
}

// NewFile creates a new file-backed document.
func NewFile(logger log.Logger, path string) *File {
	return &File{
		logger: logger,
		path:   filepath.Clean(path),
	}
}

// Read reads the entire document.
func (f *File) Read() (string, error) {
	f.logger.Debugf("Reading %s ...", f.path)

	b, err := os.ReadFile(f.path)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Write replaces the content of the document.
// The content is written to a temporary file next to the document and then renamed over it,
// so the document is never left partially written. The original file mode is kept.
func (f *File) Write(content string) error {
	f.logger.Debugf("Writing %s ...", f.path)

	perm := os.FileMode(0644)
	if info, err := os.Stat(f.path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", f.path, err)
	}

	return nil
}
